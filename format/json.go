package format

import (
	"encoding/json"
	"io"

	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/diag"
)

// DiagnosticsJSONEncoder writes the diagnostics of one file as a JSON
// document.
type DiagnosticsJSONEncoder struct {
	w io.Writer
}

func NewDiagnosticsJSONEncoder(w io.Writer) *DiagnosticsJSONEncoder {
	return &DiagnosticsJSONEncoder{w: w}
}

func (e *DiagnosticsJSONEncoder) Encode(file string, list []diag.Diagnostic) error {
	text, err := e.MarshalText(file, list)
	if err != nil {
		return err
	}
	if _, err = e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *DiagnosticsJSONEncoder) MarshalText(file string, list []diag.Diagnostic) ([]byte, error) {
	data := jsonFile{
		File:        file,
		Diagnostics: make([]jsonDiagnostic, len(list)),
	}
	for i, d := range list {
		data.Diagnostics[i] = jsonDiagnostic{
			Source:  d.Source.String(),
			Message: d.Message,
			Start:   *jsonPosition(d.Start),
			End:     *jsonPosition(d.End),
			Rules:   d.Rules,
		}
	}
	return json.MarshalIndent(data, "", "  ")
}

type jsonFile struct {
	File        string           `json:"file"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
}

type jsonDiagnostic struct {
	Source  string          `json:"source"`
	Message string          `json:"message"`
	Start   astJSONPosition `json:"start"`
	End     astJSONPosition `json:"end"`
	Rules   []string        `json:"rules,omitempty"`
}
