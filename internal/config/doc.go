// Package config provides configuration management for rankskills.
// It handles loading configuration from multiple sources and validation.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Command line flags (applied by the caller, highest priority)
//	2. Environment variables
//	3. YAML configuration file
//	4. Default values (lowest priority)
//
// Without a file or environment variables the defaults reproduce the plain
// text report with the -2..+2 scoring policy.
//
// # Environment Variables
//
// All environment variables follow the pattern SKILLS_<SECTION>_<FIELD>:
//
//	SKILLS_LOGGING_LEVEL=debug
//	SKILLS_REPORT_FORMAT=table
//	SKILLS_POLICY_SUSTAIN_DONT_KNOW=-1
//	SKILLS_POLICY_MISSING_MARKERS=,nan,N/A
//	SKILLS_TELEMETRY_METRICS_FILE=/var/lib/node_exporter/skills.prom
//
// The coding scale itself can only be replaced from the YAML file:
//
//	policy:
//	  scale:
//	    Strongly Disagree: -2
//	    Disagree: -1
//	    Neither agree nor disagree: 0
//	    Agree: 1
//	    Strongly Agree: 2
//	  sustain:
//	    dont_know: -2
//
// # Validation
//
// Struct constraints are checked with go-playground/validator and the
// scoring policy must place every substitute on the scale.
package config
