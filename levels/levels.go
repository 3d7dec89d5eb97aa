// Package levels embeds the default campaign.
package levels

import "embed"

//go:embed *.yaml
var FS embed.FS
