package tui

// RenderError formats a failure line for the status bar.
func RenderError(err error) string {
	if err == nil {
		return ""
	}
	return RenderErrorText(err.Error())
}

// RenderErrorText is RenderError for an already-formatted message.
func RenderErrorText(text string) string {
	if text == "" {
		return ""
	}
	return errStyle.Render("✗ " + text)
}

// RenderSuccess formats a confirmation line for the status bar.
func RenderSuccess(msg string) string {
	if msg == "" {
		return ""
	}
	return okStyle.Render("✓ " + msg)
}

// RenderHeader renders the app title with the view name next to it.
func RenderHeader(view string) string {
	h := headerStyle.Render("Facturo")
	if view != "" {
		h += "  " + dimStyle.Render(view)
	}
	return h
}

// RenderKeyHelp renders a key-binding legend, alternating key and
// description pairs.
func RenderKeyHelp(pairs ...string) string {
	var out string
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			out += dimStyle.Render("  ·  ")
		}
		out += accentStyle.Render(pairs[i]) + " " + dimStyle.Render(pairs[i+1])
	}
	return out
}
