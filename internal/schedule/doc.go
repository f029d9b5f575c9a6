// Package schedule turns free-text task entries into validated tasks.
//
// Input is a single line of entries separated by ';', each entry holding a
// task name and two YYYY-MM-DD dates separated by ','. Invalid entries never
// stop the others: each one yields a Diagnostic instead of a Task.
package schedule
