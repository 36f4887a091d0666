package persona

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultModel se usa cuando un archivo de persona no declara modelo.
const DefaultModel = "gpt-4o"

var ErrUnknownPersona = errors.New("unknown persona")

// Persona agrupa el texto de sistema y el modelo elegidos al desplegar.
type Persona struct {
	Name   string `yaml:"name"`
	Model  string `yaml:"model"`
	Prompt string `yaml:"prompt"`
}

var builtins = map[string]Persona{
	"sk": {
		Name:   "sk",
		Model:  "gpt-4o",
		Prompt: slovakPrompt,
	},
	"en": {
		Name:   "en",
		Model:  "gpt-3.5-turbo",
		Prompt: englishPrompt,
	},
	"brief": {
		Name:   "brief",
		Model:  "gpt-4o-mini",
		Prompt: briefPrompt,
	},
}

// Lookup devuelve una persona incluida en el binario.
func Lookup(name string) (Persona, error) {
	p, ok := builtins[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Persona{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownPersona, name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Names lista las personas incluidas, ordenadas.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFile lee una persona definida en YAML.
func LoadFile(path string) (Persona, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Persona{}, fmt.Errorf("read persona file: %w", err)
	}
	return Parse(data)
}

// Parse decodifica una persona YAML y aplica defaults.
func Parse(data []byte) (Persona, error) {
	var p Persona
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Persona{}, fmt.Errorf("parse persona file: %w", err)
	}
	if strings.TrimSpace(p.Prompt) == "" {
		return Persona{}, errors.New("persona prompt is empty")
	}
	if p.Model == "" {
		p.Model = DefaultModel
	}
	if p.Name == "" {
		p.Name = "custom"
	}
	return p, nil
}

// Resolve elige la persona activa: archivo si hay, si no una incluida.
// modelOverride reemplaza el modelo de la persona cuando no está vacío.
func Resolve(name, file, modelOverride string) (Persona, error) {
	var (
		p   Persona
		err error
	)
	if file != "" {
		p, err = LoadFile(file)
	} else {
		p, err = Lookup(name)
	}
	if err != nil {
		return Persona{}, err
	}
	if modelOverride != "" {
		p.Model = modelOverride
	}
	return p, nil
}
