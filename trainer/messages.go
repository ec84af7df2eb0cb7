package trainer

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/vsariola/scopetrainer"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Messages holds the templates of the feedback texts, keyed by message name.
type Messages struct {
	templates map[string]*template.Template
}

//go:embed messages.yml
var defaultMessagesYaml []byte

var defaultMessages = func() *Messages {
	m, err := NewMessages(defaultMessagesYaml)
	if err != nil {
		panic(fmt.Errorf("failed to parse default messages: %w", err))
	}
	return m
}()

// NewMessages parses a yaml map of message names to text/template sources.
// Templates have the sprig function map available.
func NewMessages(data []byte) (*Messages, error) {
	var raw map[string]string
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	ret := &Messages{templates: make(map[string]*template.Template, len(raw))}
	for name, src := range raw {
		tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(src)
		if err != nil {
			return nil, fmt.Errorf("message %q: %w", name, err)
		}
		ret.templates[name] = tmpl
	}
	return ret, nil
}

func DefaultMessages() *Messages { return defaultMessages }

// Format executes the named message template with data.
func (m *Messages) Format(name string, data any) (string, error) {
	tmpl, ok := m.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown message %q", name)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("message %q: %w", name, err)
	}
	return b.String(), nil
}

// WaveformName is the display name of a waveform, e.g. "Square".
func WaveformName(w scopetrainer.Waveform) string {
	return cases.Title(language.English).String(w.String())
}
