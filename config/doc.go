// Package config loads kindstore settings.
//
// Sources are applied in order, later ones winning:
//
//  1. [DefaultConfig]
//  2. a YAML file, when a path is given
//  3. a .env file in the working directory, when present
//  4. the process environment
//
// Example file:
//
//	backend: dynamodb
//	defaultLimit: 25
//	logLevel: debug
//	dynamodb:
//	  region: us-east-1
//	  table: kindstore
//	  endpoint: http://localhost:8000
package config
