package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	oldOut, oldErr := Stdout, Stderr
	Stdout, Stderr = &out, &errOut
	t.Cleanup(func() { Stdout, Stderr = oldOut, oldErr })
	return &out, &errOut
}

func TestErrorWritesStderr(t *testing.T) {
	out, errOut := capture(t)
	Error("scan %s: %v", "page.html", "boom")

	if out.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "scan page.html: boom") {
		t.Errorf("unexpected stderr %q", errOut.String())
	}
}

func TestJSONError(t *testing.T) {
	out, _ := capture(t)
	JSONError("not_found", "no item 9")

	var body ErrorBody
	if err := json.Unmarshal(out.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON %q: %v", out.String(), err)
	}
	if body.Error.Code != "not_found" || body.Error.Message != "no item 9" {
		t.Errorf("unexpected body %+v", body)
	}
}
