package message

import (
	"strings"
	"testing"
)

func TestSanitizeHTMLMboxTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"script subtree removed",
			"<div><script>evil()</script><p>ok</p></div>",
			"<div><p>ok</p></div>",
		},
		{
			"iframe removed",
			`<p>before</p><iframe src="http://example.com"></iframe><p>after</p>`,
			"<p>before</p><p>after</p>",
		},
		{
			"object and embed removed",
			"<object><embed></object><p>kept</p>",
			"<p>kept</p>",
		},
		{
			"top-level script removed",
			"<script>x</script><p>kept</p>",
			"<p>kept</p>",
		},
		{
			"clean content unchanged",
			"<p>hi</p>",
			"<p>hi</p>",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := sanitizeHTML(tc.in, mboxDropTags); got != tc.want {
				t.Errorf("sanitizeHTML(%q) = %q; want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitizeHTMLJSONTags(t *testing.T) {
	// The JSON sanitizer is narrower: style goes, iframe stays.
	in := `<style>p{}</style><p>x</p><iframe src="a"></iframe>`
	got := sanitizeHTML(in, jsonDropTags)

	if strings.Contains(got, "<style>") {
		t.Errorf("sanitizeHTML = %q; style should be dropped", got)
	}
	if !strings.Contains(got, "<iframe") {
		t.Errorf("sanitizeHTML = %q; iframe should survive for export bodies", got)
	}
	if !strings.Contains(got, "<p>x</p>") {
		t.Errorf("sanitizeHTML = %q; content lost", got)
	}
}
