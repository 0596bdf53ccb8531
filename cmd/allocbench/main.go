// Command allocbench drives allocation-pattern workloads against the
// fastalloc core, for manual experimentation and load-testing.
//
// Grounded on the teacher's cmd/hivectl (cobra-based CLI, persistent
// verbose/quiet/json flags, printInfo/printError helpers writing to
// stdout/stderr directly rather than through the logger).
package main

func main() {
	execute()
}
