package view

import (
	"strings"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// SettingsPanel is a small form of text fields with an Apply button. It only
// collects raw strings; parsing and validation live in the presenter.
type SettingsPanel interface {
	Build(startRow int, values map[string]string) (endRow int)
	Values() map[string]string
	SetValues(values map[string]string)
}

// SettingsField describes one form row.
type SettingsField struct {
	ID    string
	Label string
}

type settingsPanel struct {
	fields  []SettingsField
	onApply func(map[string]string)
	widgets map[string]*TextWidget
}

// NewSettingsPanel creates the panel; onApply receives the field values.
func NewSettingsPanel(fields []SettingsField, onApply func(map[string]string)) SettingsPanel {
	return &settingsPanel{fields: fields, onApply: onApply, widgets: make(map[string]*TextWidget)}
}

func (v *settingsPanel) Build(startRow int, values map[string]string) (row int) {
	row = startRow
	for _, f := range v.fields {
		lbl := Label(Txt(f.Label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(12))
		Grid(w, Row(row), Column(2), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		v.widgets[f.ID] = w
		row++
	}
	v.SetValues(values)
	apply := Button(Txt("Apply"), Command(func() {
		if v.onApply != nil {
			v.onApply(v.Values())
		}
	}))
	Grid(apply, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *settingsPanel) Values() map[string]string {
	out := make(map[string]string, len(v.widgets))
	for id, w := range v.widgets {
		if w == nil {
			continue
		}
		out[id] = strings.TrimSpace(strings.Join(w.Get("1.0", END), ""))
	}
	return out
}

func (v *settingsPanel) SetValues(values map[string]string) {
	for id, val := range values {
		w := v.widgets[id]
		if w == nil {
			continue
		}
		w.Delete("1.0", END)
		w.Insert("1.0", val)
	}
}
