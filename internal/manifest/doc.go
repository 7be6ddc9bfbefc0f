// Package manifest decodes site manifests: XML documents naming a site and
// listing the packages it offers. Decoding happens in two steps. The XML is
// first mapped onto a generic object (attributes under an "@_" prefix, text
// under "#text", repeated elements collapsed into arrays) and validated
// against an embedded JSON schema. The object is then normalized into a Site
// with an explicit package slice, so a single <package> element and a list of
// one look the same to callers.
package manifest
