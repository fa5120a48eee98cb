package content

import _ "embed"

// defaultSite is the content file compiled into the binary.
//
//go:embed site.yaml
var defaultSite []byte
