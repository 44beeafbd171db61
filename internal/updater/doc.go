// Package updater keeps a user script in step with the latest GitHub release
// of its repository. The release carries a metadata.json asset listing the
// current version of every script; when that differs from the version
// recorded in the local config document, the script asset is downloaded over
// the local file and the new version is recorded.
//
// Every failure is reported once through the notifier and turns into a false
// result. Nothing is retried.
package updater
