// Package platform locates and removes the running initializer. On Unix
// systems a running executable can be unlinked while it runs. On Windows the
// file is locked for the lifetime of the process, so deleting it fails and the
// caller is told to remove it by hand.
package platform
