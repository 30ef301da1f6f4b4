// Package memory provides in-memory implementations of driven port
// interfaces. They back the "memory" backend and serve as test doubles for
// services and front ends.
package memory
