// Package slate contains the core components of Slate, a small in-memory
// columnar data engine. This root package defines the data model - typed
// Columns, Tables, boolean Masks and fill values - while subpackages supply
// parsers (datasource/dsv, datasource/jsonl), writers (writer/dsv),
// rendering (render) and column statistics (stats).
package slate
