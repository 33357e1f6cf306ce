// Package config provides configuration parsing for vsel.
//
// The configuration is stored in vsel.json. Every section is optional;
// missing values fall back to the defaults returned by New.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "addr": ":8080",
//	    "readTimeout": "10s",
//	    "writeTimeout": "30s",
//	    "maxBodyBytes": 4194304
//	  },
//	  "metrics": {
//	    "namespace": "vsel",
//	    "subsystem": "join"
//	  },
//	  "tracing": {
//	    "tracerName": "github.com/vango-dev/vsel"
//	  },
//	  "s3": {
//	    "region": "eu-west-1",
//	    "endpoint": "http://localhost:9000",
//	    "pathStyle": true
//	  },
//	  "log": {
//	    "level": "debug",
//	    "format": "json"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.LoadOrDefault(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	logger := cfg.Logger(os.Stderr)
//	logger.Info("listening", "addr", cfg.Server.Addr)
package config
