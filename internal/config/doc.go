// Package config provides configuration parsing for viewspec.
//
// The configuration is stored in viewspec.json. Every field is optional.
//
// # Configuration File Structure
//
//	{
//	  "name": "todo",
//	  "render": {
//	    "pretty": true,
//	    "indent": "  ",
//	    "debug": false,
//	    "inspect": false
//	  },
//	  "demo": {
//	    "title": "Groceries",
//	    "theme": "dark",
//	    "items": ["milk", "eggs"]
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "viewspec"
//	  },
//	  "log": {
//	    "level": "debug",
//	    "format": "json"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	logger := cfg.NewLogger(os.Stderr)
package config
