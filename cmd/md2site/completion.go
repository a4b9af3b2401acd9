package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota
	flagBool
	flagInt
	flagEnum
	flagFile
	flagDir
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string
	Short    string
	Type     flagType
	Desc     string
	Values   []string
	FileGlob string
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	FilePattern string // non-empty when the command takes file arguments
}

// completionMeta holds completion hints that a FlagSet cannot express.
type completionMeta struct {
	Values   []string
	FileGlob string
	IsDir    bool
}

// flagCompletionMeta returns completion hints keyed by flag name.
func flagCompletionMeta() map[string]completionMeta {
	loader := assets.NewEmbeddedLoader()
	return map[string]completionMeta{
		"engine":     {Values: pipeline.Engines},
		"style":      {Values: loader.Styles()},
		"template":   {Values: loader.Templates()},
		"config":     {FileGlob: "*.yaml,*.yml"},
		"content":    {IsDir: true},
		"static":     {IsDir: true},
		"output":     {IsDir: true},
		"asset-path": {IsDir: true},
	}
}

// commandFlagSet returns a FlagSet registered exactly as the parser for
// name registers it.
func commandFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	switch name {
	case "build":
		addBuildFlags(fs, &buildFlags{})
	case "serve":
		addServeFlags(fs, &serveFlags{})
	case "page":
		f := &pageFlags{}
		addCommonFlags(fs, &f.common)
		addRenderFlags(fs, &f.render)
	}
	return fs
}

// extractFlags converts the flags of fs into completion definitions.
func extractFlags(fs *flag.FlagSet) []flagDef {
	meta := flagCompletionMeta()
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if m, ok := meta[f.Name]; ok {
			switch {
			case len(m.Values) > 0:
				fd.Type = flagEnum
				fd.Values = m.Values
			case m.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = m.FileGlob
			case m.IsDir:
				fd.Type = flagDir
			}
		}
		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
func getCommands() []commandDef {
	return []commandDef{
		{Name: "build", Desc: "Build the site into the output directory", Flags: extractFlags(commandFlagSet("build"))},
		{Name: "serve", Desc: "Build the site and serve it locally", Flags: extractFlags(commandFlagSet("serve"))},
		{Name: "page", Desc: "Generate a single page", Flags: extractFlags(commandFlagSet("page")), FilePattern: "*.md,*.markdown,*.html"},
		{Name: "completion", Desc: "Generate shell completion script"},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
	}
}

// GenerateCompletion writes a shell completion script to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	case ShellPowerShell:
		return generatePowerShell(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
}

func commandNames(cmds []commandDef) string {
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	return strings.Join(names, " ")
}

func flagWords(flags []flagDef) string {
	words := make([]string, 0, 2*len(flags))
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

func shellQuote(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}

func generateBash(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# bash completion for md2site\n\n")
	b.WriteString("_md2site_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", commandNames(cmds))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${cmd}\" in\n")
	for _, c := range cmds {
		if c.Name == "completion" {
			b.WriteString("    completion)\n")
			b.WriteString("        COMPREPLY=($(compgen -W \"bash zsh fish powershell\" -- \"${cur}\"))\n")
			b.WriteString("        ;;\n")
			continue
		}
		if c.Name == "help" {
			b.WriteString("    help)\n")
			fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", commandNames(cmds))
			b.WriteString("        ;;\n")
			continue
		}
		if len(c.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&b, "    %s)\n", c.Name)
		b.WriteString("        case \"${prev}\" in\n")
		for _, f := range c.Flags {
			pattern := "--" + f.Long
			if f.Short != "" {
				pattern += "|-" + f.Short
			}
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(&b, "        %s)\n            COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n            return\n            ;;\n",
					pattern, strings.Join(f.Values, " "))
			case flagDir:
				fmt.Fprintf(&b, "        %s)\n            COMPREPLY=($(compgen -d -- \"${cur}\"))\n            return\n            ;;\n", pattern)
			case flagFile:
				fmt.Fprintf(&b, "        %s)\n            COMPREPLY=($(compgen -f -- \"${cur}\"))\n            return\n            ;;\n", pattern)
			}
		}
		b.WriteString("        esac\n")
		b.WriteString("        if [[ \"${cur}\" == -* ]]; then\n")
		fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", flagWords(c.Flags))
		if c.FilePattern != "" {
			b.WriteString("        else\n")
			b.WriteString("            COMPREPLY=($(compgen -f -- \"${cur}\"))\n")
		}
		b.WriteString("        fi\n")
		b.WriteString("        ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _md2site_completions md2site\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func generateZsh(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("#compdef md2site\n\n")
	b.WriteString("_md2site() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, shellQuote(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${words[2]}\" in\n")
	for _, c := range cmds {
		switch {
		case c.Name == "completion":
			b.WriteString("    completion)\n        _values 'shell' bash zsh fish powershell\n        ;;\n")
		case c.Name == "help":
			b.WriteString("    help)\n        _describe 'command' commands\n        ;;\n")
		case len(c.Flags) > 0:
			fmt.Fprintf(&b, "    %s)\n        _arguments \\\n", c.Name)
			for _, f := range c.Flags {
				fmt.Fprintf(&b, "            '--%s[%s]%s' \\\n", f.Long, shellQuote(f.Desc), zshAction(f))
				if f.Short != "" {
					fmt.Fprintf(&b, "            '-%s[%s]%s' \\\n", f.Short, shellQuote(f.Desc), zshAction(f))
				}
			}
			if c.FilePattern != "" {
				b.WriteString("            '*:file:_files'\n")
			} else {
				b.WriteString("            && return\n")
			}
			b.WriteString("        ;;\n")
		}
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _md2site md2site\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func zshAction(f flagDef) string {
	switch f.Type {
	case flagBool:
		return ""
	case flagEnum:
		return ":value:(" + strings.Join(f.Values, " ") + ")"
	case flagDir:
		return ":directory:_files -/"
	case flagFile:
		return ":file:_files"
	default:
		return ":value:"
	}
}

func generateFish(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# fish completion for md2site\n\n")
	b.WriteString("function __fish_md2site_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_md2site_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c md2site -f\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c md2site -n __fish_md2site_needs_command -a %s -d '%s'\n", c.Name, shellQuote(c.Desc))
	}
	b.WriteString("complete -c md2site -n '__fish_md2site_using_command completion' -a 'bash zsh fish powershell'\n")
	fmt.Fprintf(&b, "complete -c md2site -n '__fish_md2site_using_command help' -a '%s'\n", commandNames(cmds))

	for _, c := range cmds {
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c md2site -n '__fish_md2site_using_command %s' -l %s", c.Name, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			switch f.Type {
			case flagBool:
			case flagEnum:
				line += " -x -a '" + strings.Join(f.Values, " ") + "'"
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			case flagFile:
				line += " -r -F"
			default:
				line += " -x"
			}
			line += " -d '" + shellQuote(f.Desc) + "'"
			b.WriteString(line + "\n")
		}
		if c.FilePattern != "" {
			fmt.Fprintf(&b, "complete -c md2site -n '__fish_md2site_using_command %s' -F\n", c.Name)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func generatePowerShell(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# powershell completion for md2site\n\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName md2site -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $words = $commandAst.CommandElements | ForEach-Object { $_.ToString() }\n")
	b.WriteString("    $flags = @{\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 {
			continue
		}
		quoted := make([]string, 0, len(c.Flags))
		for _, f := range c.Flags {
			quoted = append(quoted, "'--"+f.Long+"'")
		}
		fmt.Fprintf(&b, "        '%s' = @(%s)\n", c.Name, strings.Join(quoted, ", "))
	}
	b.WriteString("    }\n\n")
	b.WriteString("    if ($words.Count -le 2 -and -not $wordToComplete.StartsWith('-')) {\n")
	quotedCmds := make([]string, 0, len(cmds))
	for _, c := range cmds {
		quotedCmds = append(quotedCmds, "'"+c.Name+"'")
	}
	fmt.Fprintf(&b, "        $candidates = @(%s)\n", strings.Join(quotedCmds, ", "))
	b.WriteString("    } elseif ($words[1] -eq 'completion') {\n")
	b.WriteString("        $candidates = @('bash', 'zsh', 'fish', 'powershell')\n")
	b.WriteString("    } else {\n")
	b.WriteString("        $candidates = $flags[$words[1]]\n")
	b.WriteString("    }\n\n")
	b.WriteString("    $candidates | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    eval \"$(md2site completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh (before compinit):")
	fmt.Fprintln(w, "    eval \"$(md2site completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    md2site completion fish > ~/.config/fish/completions/md2site.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    md2site completion powershell | Out-String | Invoke-Expression")
}
