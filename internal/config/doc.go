/*
Package config defines the format-agnostic model of the build manifest.

The manifest front end is split the same way the rest of the analysis
pipeline is: the schema package mirrors the HCL block layout, the hcl
package parses and translates it, and this package holds the result that
everything downstream consumes. Nothing outside the hcl package touches an
hcl.Body; nothing in this package knows the manifest was ever HCL.
*/
package config
