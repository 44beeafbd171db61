// Package platform hides the file permission differences between Unix and
// Windows hosts. Scripts are rewritten in place on both, but only Unix keeps
// mode bits worth restoring.
package platform
