package completion

import "strings"

// Value is one accepted value of a flag.
type Value struct {
	Value       string
	Description string
}

// Flag describes an option as seen by a shell.
type Flag struct {
	Long        string
	Short       string
	Description string
	Negatable   bool
	TakesValue  bool
	Values      []Value
}

// Words returns every form the flag can be typed in.
func (f Flag) Words() []string {
	words := []string{"--" + f.Long}
	if f.Negatable {
		words = append(words, "--no-"+f.Long)
	}
	if f.Short != "" {
		words = append(words, "-"+f.Short)
	}

	return words
}

// Command describes one level of the command tree. The top level has an empty Path.
type Command struct {
	Path        []string
	Aliases     []string
	Description string
	Hidden      bool
	Flags       []Flag
	// Subcommands holds the names of the visible subcommands, sorted.
	Subcommands []string
}

// Key is the space separated path of the command.
func (c Command) Key() string {
	return strings.Join(c.Path, " ")
}

// Parent is the key of the enclosing command.
func (c Command) Parent() string {
	if len(c.Path) == 0 {
		return ""
	}

	return strings.Join(c.Path[:len(c.Path)-1], " ")
}

// Name is the last element of Path.
func (c Command) Name() string {
	if len(c.Path) == 0 {
		return ""
	}

	return c.Path[len(c.Path)-1]
}

// Data is everything a completion script needs. Commands holds the top level first followed
// by every command depth first.
type Data struct {
	Commands []Command
}

// Find returns the command with the given key.
func (d Data) Find(key string) (Command, bool) {
	for _, c := range d.Commands {
		if c.Key() == key {
			return c, true
		}
	}

	return Command{}, false
}

// candidates lists the words offered after the command: its flags and visible subcommands.
func candidates(c Command) []string {
	var words []string
	for _, f := range c.Flags {
		words = append(words, f.Words()...)
	}

	return append(words, c.Subcommands...)
}

func valueWords(f Flag) []string {
	words := make([]string, len(f.Values))
	for i, v := range f.Values {
		words[i] = v.Value
	}

	return words
}
