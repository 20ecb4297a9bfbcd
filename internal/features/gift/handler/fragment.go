package handler

import (
	"fmt"
	"html"
	"strings"

	"gift-lookup/internal/features/gift/domain"
)

// Placeholder copy per outcome. Upstream detail never goes further than the
// bare status code.
const (
	copyNotFound   = "No gift message found for those details."
	copyBadRequest = "Please enter both last name and postcode."
	copyInternal   = "Lookup failed. Please try again."
)

// renderFragment maps a lookup result to a self-contained HTML card that a
// host page can embed directly.
func renderFragment(res domain.Result) string {
	switch res.Status {
	case domain.StatusFoundWithMessage:
		return messageCard(res.Message)
	case domain.StatusBadRequest:
		return placeholderCard(copyBadRequest)
	case domain.StatusUpstreamError:
		return placeholderCard(fmt.Sprintf("Shopify API error: %d", res.UpstreamCode))
	case domain.StatusInternalError:
		return placeholderCard(copyInternal)
	default:
		// not_found and found_no_message share the same copy
		return placeholderCard(copyNotFound)
	}
}

// messageCard renders a found gift message, escaped and with newlines
// converted to line breaks.
func messageCard(message string) string {
	body := strings.ReplaceAll(escapeHTML(message), "\n", "<br>")
	return card(`<div style="white-space:pre-wrap;line-height:1.5">` + body + `</div>`)
}

// placeholderCard renders the muted single-sentence variant.
func placeholderCard(message string) string {
	return card(`<p style="margin:0;color:#666">` + escapeHTML(message) + `</p>`)
}

// card wraps content in the shared inline-styled container.
func card(content string) string {
	return `
<div class="gift-result-card" style="padding:16px;border:1px solid #e6e6e6;border-radius:12px;background:#fff">
  <h2 style="margin:0 0 8px;font-weight:700;color:#4b3f43">Gift message lookup</h2>
  ` + content + `
</div>`
}

// escapeHTML neutralizes the five reserved markup characters before any
// untrusted text reaches the fragment.
func escapeHTML(s string) string {
	return html.EscapeString(s)
}
