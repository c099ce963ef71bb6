// Package preprocess strips non-content chrome from a parsed document
// before conversion. It mutates the tree in place; conversion itself never
// depends on preprocessing having run.
package preprocess

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/htmldown/htmldown/types"
)

// Selectors removed at every preset. Script and style never render anyway,
// but removing them keeps the later passes from scanning their content.
var minimalSelectors = []string{
	"script",
	"style",
	"template",
	"noscript",
	"[hidden]",
	`[aria-hidden="true"]`,
}

var standardSelectors = []string{
	".advertisement",
	".ads",
	".ad-container",
	".banner",
	".cookie-banner",
	".cookie-notice",
	".social-share",
	".share-buttons",
	".skip-link",
	"[role=banner]",
	"[role=complementary]",
}

var aggressiveSelectors = []string{
	"aside",
	"iframe",
	".sidebar",
	".related",
	".related-posts",
	".comments",
	"#comments",
	".newsletter",
	".subscribe",
	".popup",
	".modal",
	".breadcrumb",
	".pagination",
}

// Apply removes elements matching the configured preset from the tree.
func Apply(root *html.Node, opts types.PreprocessingOptions) {
	if !opts.Enabled {
		return
	}
	doc := goquery.NewDocumentFromNode(root)

	selectors := append([]string(nil), minimalSelectors...)
	if opts.Preset >= types.PresetStandard {
		selectors = append(selectors, standardSelectors...)
	}
	if opts.Preset >= types.PresetAggressive {
		selectors = append(selectors, aggressiveSelectors...)
	}
	if opts.RemoveNavigation && opts.Preset >= types.PresetStandard {
		selectors = append(selectors, "nav", "header", "footer", "[role=navigation]")
	}
	if opts.RemoveForms && opts.Preset >= types.PresetStandard {
		selectors = append(selectors, "form", "button", "input", "select", "textarea")
	}

	doc.Find(strings.Join(selectors, ", ")).Remove()
}
