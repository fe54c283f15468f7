package html

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	formPolicyOnce sync.Once
	formPolicy     *bluemonday.Policy
)

// formSanitizer allows the markup a signup form needs and nothing else, so a
// custom template cannot smuggle scripts or event handlers into the output.
func formSanitizer() *bluemonday.Policy {
	formPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("form", "div", "label", "input", "button", "small", "p", "h2", "span")
		policy.AllowAttrs("class", "id").Globally()
		policy.AllowDataAttributes()
		policy.AllowAttrs("aria-invalid", "aria-describedby", "aria-pressed").Globally()

		policy.AllowAttrs("method", "action", "novalidate").OnElements("form")
		policy.AllowAttrs("type", "name", "value", "checked", "autocomplete").OnElements("input")
		policy.AllowAttrs("type").OnElements("button")
		policy.AllowAttrs("for").OnElements("label")
		policy.AllowRelativeURLs(true)
		policy.AllowURLSchemes("http", "https")

		policy.AllowStyles("width", "background-color").OnElements("div")
		policy.AllowStyles("color").OnElements("p")

		formPolicy = policy
	})
	return formPolicy
}

func sanitize(markup string) string {
	return formSanitizer().Sanitize(markup)
}
