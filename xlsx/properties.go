package xlsx

import (
	"strconv"
	"time"

	"golang.org/x/text/language"

	"xlsxw/xlsx/xmlwriter"
)

// Properties are document metadata stored in docProps parts.
type Properties struct {
	Title    string
	Subject  string
	Author   string
	Manager  string
	Company  string
	Category string
	Keywords string
	Comments string
	Status   string
	// Language is written as dc:language, skipped when undetermined.
	Language language.Tag
	// HyperlinkBase is base address for relative hyperlinks.
	HyperlinkBase string
	// Created is used for both creation and modification time, current time
	// when zero.
	Created time.Time
}

func assembleApp(w *xmlwriter.Writer, props *Properties, sheets []string) {
	w.Declaration()
	w.StartTag("Properties",
		xmlwriter.A("xmlns", "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"),
		xmlwriter.A("xmlns:vt", "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes"))

	w.DataElement("Application", "Microsoft Excel")
	w.DataElement("DocSecurity", "0")
	w.DataElement("ScaleCrop", "false")

	w.StartTag("HeadingPairs")
	w.StartTag("vt:vector", xmlwriter.AInt("size", 2), xmlwriter.A("baseType", "variant"))
	w.StartTag("vt:variant")
	w.DataElement("vt:lpstr", "Worksheets")
	w.EndTag("vt:variant")
	w.StartTag("vt:variant")
	w.DataElement("vt:i4", strconv.Itoa(len(sheets)))
	w.EndTag("vt:variant")
	w.EndTag("vt:vector")
	w.EndTag("HeadingPairs")

	w.StartTag("TitlesOfParts")
	w.StartTag("vt:vector", xmlwriter.AInt("size", len(sheets)), xmlwriter.A("baseType", "lpstr"))
	for _, name := range sheets {
		w.DataElement("vt:lpstr", name)
	}
	w.EndTag("vt:vector")
	w.EndTag("TitlesOfParts")

	if props.Manager != "" {
		w.DataElement("Manager", props.Manager)
	}
	w.DataElement("Company", props.Company)
	w.DataElement("LinksUpToDate", "false")
	w.DataElement("SharedDoc", "false")
	if props.HyperlinkBase != "" {
		w.DataElement("HyperlinkBase", props.HyperlinkBase)
	}
	w.DataElement("HyperlinksChanged", "false")
	w.DataElement("AppVersion", "12.0000")

	w.EndTag("Properties")
}

func assembleCore(w *xmlwriter.Writer, props *Properties, created time.Time) {
	w.Declaration()
	w.StartTag("cp:coreProperties",
		xmlwriter.A("xmlns:cp", "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"),
		xmlwriter.A("xmlns:dc", "http://purl.org/dc/elements/1.1/"),
		xmlwriter.A("xmlns:dcterms", "http://purl.org/dc/terms/"),
		xmlwriter.A("xmlns:dcmitype", "http://purl.org/dc/dcmitype/"),
		xmlwriter.A("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance"))

	optional := func(name, value string) {
		if value != "" {
			w.DataElement(name, value)
		}
	}
	optional("dc:title", props.Title)
	optional("dc:subject", props.Subject)
	w.DataElement("dc:creator", props.Author)
	optional("cp:keywords", props.Keywords)
	optional("dc:description", props.Comments)
	if props.Language != language.Und {
		w.DataElement("dc:language", props.Language.String())
	}
	w.DataElement("cp:lastModifiedBy", props.Author)

	stamp := created.UTC().Format("2006-01-02T15:04:05Z")
	w.DataElement("dcterms:created", stamp, xmlwriter.A("xsi:type", "dcterms:W3CDTF"))
	w.DataElement("dcterms:modified", stamp, xmlwriter.A("xsi:type", "dcterms:W3CDTF"))

	optional("cp:category", props.Category)
	optional("cp:contentStatus", props.Status)

	w.EndTag("cp:coreProperties")
}
