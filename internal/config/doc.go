// Package config loads project settings for the tooltip CLI and preview
// server.
//
// Settings come from tooltip.yaml (or the file passed with --config) and
// TOOLTIP_* environment variables, which take precedence. Nested keys use
// underscores in the environment: preview.port is TOOLTIP_PREVIEW_PORT.
//
// # Configuration File Structure
//
//	tooltip:
//	  classPrefix: muze
//	  iconContainerSize: 12
//	  spacing: 6
//	strict: true
//	log:
//	  level: debug
//	  format: text
//	preview:
//	  host: localhost
//	  port: 7070
//	snapshot:
//	  dir: snapshots
//	  bucket: charts
//	  prefix: tooltips
//	  region: eu-west-1
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Preview:", cfg.PreviewURL())
package config
