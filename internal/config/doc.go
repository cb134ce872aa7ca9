// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources. Earlier sources take
// precedence for non-zero fields:
//  1. Environment variables (a .env file in the working directory is loaded
//     into the environment first without overriding existing variables)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the verification client.
package config
