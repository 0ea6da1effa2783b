// Package catalog loads reminder type definitions from YAML and seeds them
// into the data store.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reminderly/reminderly/internal/domain/reminder"
	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
)

//go:embed defaults.yaml
var defaultCatalog []byte

type Catalog struct {
	ReminderTypes []Entry `yaml:"reminder_types"`
}

type Entry struct {
	Name            string         `yaml:"name"`
	Description     string         `yaml:"description"`
	RecurrenceClass string         `yaml:"recurrence_class"`
	Intervals       []int          `yaml:"intervals"`
	Enabled         *bool          `yaml:"enabled"`
	Template        *TemplateEntry `yaml:"template"`
	Policy          *PolicyEntry   `yaml:"policy"`
}

type TemplateEntry struct {
	Subject string `yaml:"subject"`
	Body    string `yaml:"body"`
	Format  string `yaml:"format"`
}

type PolicyEntry struct {
	NotifyEmployee   bool     `yaml:"notify_employee"`
	NotifyManager    bool     `yaml:"notify_manager"`
	NotifyHR         bool     `yaml:"notify_hr"`
	AdditionalEmails []string `yaml:"additional_emails"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(bytes.NewReader(defaultCatalog))
}

// LoadFile reads a catalog from path. An empty path yields the default catalog.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a catalog, rejecting unknown keys and duplicate names.
func Parse(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &c, nil
		}
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(c.ReminderTypes))
	for i, e := range c.ReminderTypes {
		if _, dup := seen[e.Name]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate name %q", i, e.Name)
		}
		seen[e.Name] = struct{}{}
	}
	return &c, nil
}

// Build turns the entry into a validated reminder type.
func (e Entry) Build() (*reminder.ReminderType, error) {
	class, err := vo.ParseRecurrenceClass(e.RecurrenceClass)
	if err != nil {
		return nil, err
	}

	rt, err := reminder.NewReminderType(e.Name, e.Description, class, e.Intervals)
	if err != nil {
		return nil, err
	}
	if err := e.applyTo(rt); err != nil {
		return nil, err
	}
	return rt, nil
}

// Overwrite replaces every catalog-managed field of an existing type.
func (e Entry) Overwrite(rt *reminder.ReminderType) error {
	class, err := vo.ParseRecurrenceClass(e.RecurrenceClass)
	if err != nil {
		return err
	}
	if err := rt.Update(e.Name, e.Description, class); err != nil {
		return err
	}
	if err := rt.SetIntervals(e.Intervals); err != nil {
		return err
	}
	return e.applyTo(rt)
}

func (e Entry) applyTo(rt *reminder.ReminderType) error {
	var tpl *reminder.EmailTemplate
	if e.Template != nil {
		var err error
		tpl, err = reminder.NewEmailTemplate(e.Template.Subject, e.Template.Body, vo.TemplateFormat(e.Template.Format))
		if err != nil {
			return fmt.Errorf("template: %w", err)
		}
	}
	rt.SetTemplate(tpl)

	var policy *reminder.RecipientPolicy
	if e.Policy != nil {
		var err error
		policy, err = reminder.NewRecipientPolicy(e.Policy.NotifyEmployee, e.Policy.NotifyManager, e.Policy.NotifyHR, e.Policy.AdditionalEmails)
		if err != nil {
			return fmt.Errorf("policy: %w", err)
		}
	}
	rt.SetPolicy(policy)

	if e.Enabled != nil && !*e.Enabled {
		rt.Disable()
	} else {
		rt.Enable()
	}
	return nil
}
