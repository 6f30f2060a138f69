package db

import _ "embed"

// CatalogYAML is the default product catalog loaded by the seed command.
//
//go:embed seed/catalog.yaml
var CatalogYAML []byte
