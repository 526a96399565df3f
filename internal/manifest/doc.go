// Package manifest loads the template manifest that declares which
// placeholder tokens a project template uses, where its README lives and what
// to tell the user once initialization finishes. A project may ship its own
// manifest in the root directory; otherwise the embedded defaults apply. Project
// manifests are validated against an embedded JSON Schema.
package manifest
