package commands

import (
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Invocation is a prefix command as typed by the user.
type Invocation struct {
	Name string
	Args []string
	// Raw is everything after the command name, line breaks included.
	Raw string
}

type MessageHandler func(s *discordgo.Session, m *discordgo.MessageCreate, inv Invocation)

// PrefixCommand is a command triggered by a chat message such as "!loot".
type PrefixCommand struct {
	Name        string
	Description string
	Category    string
	Aliases     []string
	Run         MessageHandler
}

// Registry resolves prefix commands by name or alias.
type Registry struct {
	prefix   string
	commands []*PrefixCommand
	byName   map[string]*PrefixCommand
}

func NewRegistry(prefix string) *Registry {
	return &Registry{prefix: prefix, byName: make(map[string]*PrefixCommand)}
}

func (r *Registry) Prefix() string {
	return r.prefix
}

// Register adds cmd. A later command wins when names or aliases collide.
func (r *Registry) Register(cmd *PrefixCommand) {
	r.commands = append(r.commands, cmd)
	r.byName[strings.ToLower(cmd.Name)] = cmd
	for _, a := range cmd.Aliases {
		r.byName[strings.ToLower(a)] = cmd
	}
}

func (r *Registry) Lookup(name string) (*PrefixCommand, bool) {
	cmd, ok := r.byName[strings.ToLower(name)]
	return cmd, ok
}

// Parse splits a message into a known command and its arguments.
func (r *Registry) Parse(content string) (*PrefixCommand, Invocation, bool) {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, r.prefix) {
		return nil, Invocation{}, false
	}
	body := strings.TrimLeft(content[len(r.prefix):], " \t")

	end := strings.IndexAny(body, " \t\r\n")
	if end < 0 {
		end = len(body)
	}
	name := strings.ToLower(body[:end])
	if name == "" {
		return nil, Invocation{}, false
	}
	cmd, ok := r.byName[name]
	if !ok {
		return nil, Invocation{}, false
	}

	raw := body[end:]
	return cmd, Invocation{Name: name, Args: strings.Fields(raw), Raw: raw}, true
}

// Categories groups the registered commands by category, both sorted by name.
func (r *Registry) Categories() map[string][]*PrefixCommand {
	out := make(map[string][]*PrefixCommand)
	for _, cmd := range r.commands {
		cat := cmd.Category
		if cat == "" {
			cat = "general"
		}
		out[cat] = append(out[cat], cmd)
	}
	for _, cmds := range out {
		sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	}
	return out
}
