package pdf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/form3115-prep/backend/internal/models"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog/log"
)

// Generator fills the static form template for a filing. Every call
// loads its own copy of the template, so concurrent generations need
// no coordination.
type Generator struct {
	templatePath string
	conf         *model.Configuration

	// fields holds the template's actual form field names once
	// VerifyMapping has run. Nil means unverified: assignments are
	// passed through unfiltered.
	fields map[string]bool
}

func NewGenerator(templatePath string) *Generator {
	return &Generator{
		templatePath: templatePath,
		conf:         model.NewDefaultConfiguration(),
	}
}

// VerifyMapping loads the template once and checks every mapped field
// path against the fields the template actually carries. Targets the
// template is missing are logged and later skipped during generation
// rather than failing the fill.
func (g *Generator) VerifyMapping() error {
	buf, err := os.ReadFile(g.templatePath)
	if err != nil {
		return fmt.Errorf("loading form template: %w", err)
	}

	var exported bytes.Buffer
	if err := api.ExportFormJSON(bytes.NewReader(buf), &exported, g.templatePath, g.conf); err != nil {
		return fmt.Errorf("reading form fields from template: %w", err)
	}

	fields, err := fieldNames(exported.Bytes())
	if err != nil {
		return fmt.Errorf("parsing exported form fields: %w", err)
	}

	g.fields = fields

	missing := 0
	for _, path := range mappedTargets() {
		if !fields[path] {
			missing++
			log.Warn().Str("field", path).Msg("mapped field not present in template")
		}
	}

	log.Info().
		Str("template", g.templatePath).
		Int("fields", len(fields)).
		Int("missing", missing).
		Msg("verified form field mapping")

	return nil
}

// Generate produces the filled document bytes for a filing. Only a
// template that cannot be loaded is fatal; per-field problems degrade
// to warnings and blanks.
func (g *Generator) Generate(filing models.Filing) ([]byte, error) {
	buf, err := os.ReadFile(g.templatePath)
	if err != nil {
		return nil, fmt.Errorf("loading form template: %w", err)
	}

	buf = g.stripXFA(buf)

	assignments := g.filter(Assignments(filing))
	if len(assignments) == 0 {
		return buf, nil
	}

	data, err := fillData(assignments)
	if err != nil {
		return nil, fmt.Errorf("encoding form data: %w", err)
	}

	var filled bytes.Buffer
	if err := api.FillForm(bytes.NewReader(buf), bytes.NewReader(data), &filled, g.conf); err != nil {
		return nil, fmt.Errorf("filling form fields: %w", err)
	}

	return filled.Bytes(), nil
}

// stripXFA removes the template's embedded XFA rendering data so that
// viewers fall back to the AcroForm fields we fill. Some viewers show
// the stale XFA content instead of the filled fields otherwise. Failure
// here keeps the original bytes; a fill over unstripped XFA still works
// in most viewers.
func (g *Generator) stripXFA(buf []byte) []byte {
	ctx, err := api.ReadContext(bytes.NewReader(buf), g.conf)
	if err != nil {
		log.Warn().Err(err).Msg("could not parse template for XFA removal")
		return buf
	}

	catalog, err := ctx.XRefTable.Catalog()
	if err != nil {
		log.Warn().Err(err).Msg("could not resolve template catalog for XFA removal")
		return buf
	}

	acroForm, err := ctx.XRefTable.DereferenceDict(catalog["AcroForm"])
	if err != nil || acroForm == nil {
		return buf
	}

	if _, found := acroForm.Find("XFA"); !found {
		return buf
	}
	acroForm.Delete("XFA")

	var out bytes.Buffer
	if err := api.WriteContext(ctx, &out); err != nil {
		log.Warn().Err(err).Msg("could not rewrite template after XFA removal")
		return buf
	}

	return out.Bytes()
}

// filter drops assignments whose target field the template does not
// carry. Without a prior VerifyMapping everything passes through.
func (g *Generator) filter(assignments []Assignment) []Assignment {
	if g.fields == nil {
		return assignments
	}

	kept := assignments[:0]
	for _, a := range assignments {
		if !g.fields[a.Field] {
			log.Warn().Str("field", a.Field).Msg("dropping value for field missing from template")
			continue
		}
		kept = append(kept, a)
	}

	return kept
}

// fillData builds the form-data document the fill API consumes.
func fillData(assignments []Assignment) ([]byte, error) {
	type textField struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	type checkBox struct {
		Name  string `json:"name"`
		Value bool   `json:"value"`
	}
	type form struct {
		TextFields []textField `json:"textfield,omitempty"`
		CheckBoxes []checkBox  `json:"checkbox,omitempty"`
	}

	var f form
	for _, a := range assignments {
		if a.Check {
			f.CheckBoxes = append(f.CheckBoxes, checkBox{Name: a.Field, Value: a.Checked})
			continue
		}
		f.TextFields = append(f.TextFields, textField{Name: a.Field, Value: a.Text})
	}

	return json.Marshal(struct {
		Forms []form `json:"forms"`
	}{Forms: []form{f}})
}

// fieldNames collects the field names out of an exported form-data
// document. Entries that are not field lists are skipped.
func fieldNames(exported []byte) (map[string]bool, error) {
	var doc struct {
		Forms []map[string]json.RawMessage `json:"forms"`
	}
	if err := json.Unmarshal(exported, &doc); err != nil {
		return nil, err
	}

	fields := make(map[string]bool)
	for _, form := range doc.Forms {
		for _, raw := range form {
			var entries []struct {
				Name string `json:"name"`
			}
			if err := json.Unmarshal(raw, &entries); err != nil {
				continue
			}
			for _, e := range entries {
				if e.Name != "" {
					fields[e.Name] = true
				}
			}
		}
	}

	return fields, nil
}

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Filename derives the download name for a generated document from the
// client name and tax year.
func Filename(clientName string, taxYear int) string {
	return fmt.Sprintf("Form3115_%s_%d.pdf", filenameSanitizer.ReplaceAllString(clientName, "_"), taxYear)
}
