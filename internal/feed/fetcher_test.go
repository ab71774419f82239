package feed

import "testing"

func TestStripHTML(t *testing.T) {
	html := `<p>Hello <b>world</b></p><script>alert("x")</script>`

	text := StripHTML(html)

	if text != "Hello world" {
		t.Errorf("expected %q, got %q", "Hello world", text)
	}
}

func TestStripHTMLPlainText(t *testing.T) {
	text := StripHTML("just   plain\n text")

	if text != "just plain text" {
		t.Errorf("expected whitespace normalized, got %q", text)
	}
}

func TestStripHTMLEmpty(t *testing.T) {
	if text := StripHTML(""); text != "" {
		t.Errorf("expected empty string, got %q", text)
	}
}
