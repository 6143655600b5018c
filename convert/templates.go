package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"

	"xlsxw/config"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context    string
	Title      string
	Subject    string
	Author     string
	Company    string
	Category   string
	Sheets     []string
	SourceFile string
	Date       string
}

func buildSheetNames(desc *Description) []string {
	result := make([]string, 0, len(desc.Sheets))
	for i, sd := range desc.Sheets {
		name := sd.Name
		if name == "" {
			name = fmt.Sprintf("Sheet%d", i+1)
		}
		result = append(result, name)
	}
	return result
}

func expandTemplate(desc *Description, src string, name config.TemplateFieldName, field string, now time.Time) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		Title:      desc.Properties.Title,
		Subject:    desc.Properties.Subject,
		Author:     desc.Properties.Author,
		Company:    desc.Properties.Company,
		Category:   desc.Properties.Category,
		Sheets:     buildSheetNames(desc),
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		Date:       now.Format("2006-01-02"),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
