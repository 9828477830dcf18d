package draftstore

import (
	"encoding/json"

	"sourcehub/internal/source"
)

// decodeRecords parses a JSON array of source records. Only the top level is
// checked. An element that is not an object becomes an empty record, and a
// field holding the wrong JSON type keeps its zero value.
func decodeRecords(data []byte) ([]source.Source, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, err
	}
	out := make([]source.Source, 0, len(elems))
	for _, raw := range elems {
		out = append(out, decodeRecord(raw))
	}
	return out, nil
}

func decodeRecord(raw json.RawMessage) source.Source {
	var src source.Source
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return src
	}

	text := func(key string) string {
		var v string
		if value, ok := fields[key]; ok {
			if err := json.Unmarshal(value, &v); err != nil {
				return ""
			}
		}
		return v
	}
	src.ID = text("id")
	src.Title = text("title")
	src.Author = text("author")
	src.Date = text("date")
	src.URL = text("url")
	src.Category = source.Category(text("category"))
	src.KeyInsight = text("keyInsight")
	src.Citation = text("citation")
	src.Description = text("description")

	src.Tags = textList(fields["tags"])
	if sections := textList(fields["sections"]); sections != nil {
		src.Sections = make([]source.Section, 0, len(sections))
		for _, sec := range sections {
			src.Sections = append(src.Sections, source.Section(sec))
		}
	}
	return src
}

// textList keeps the string elements of a JSON array. Anything other than an
// array yields nil.
func textList(value json.RawMessage) []string {
	if value == nil {
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(value, &elems); err != nil || elems == nil {
		return nil
	}
	out := make([]string, 0, len(elems))
	for _, elem := range elems {
		var s string
		if err := json.Unmarshal(elem, &s); err == nil {
			out = append(out, s)
		}
	}
	return out
}
