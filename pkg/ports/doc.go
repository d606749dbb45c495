// Package ports defines the interfaces between the parley core and its
// collaborators: the prompt surface, the script runner, and variable
// persistence. Adapters implement them; the core only consumes them.
package ports
