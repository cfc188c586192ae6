// Package dataset reads and writes transportation-problem instances.
//
// The canonical on-disk shape is the JSON document used by the instance
// generators:
//
//	{
//	  "costs":  [[4, 6, 8, 8], [6, 8, 6, 7], [5, 7, 6, 8]],
//	  "supply": [40, 60, 50],
//	  "demand": [20, 30, 50, 50],
//	  "metadata": {"dimensions": "3x4", "total_supply": 150, "total_demand": 150}
//	}
//
// The metadata object is optional and carried verbatim; solvers never read
// it. The same document also round-trips through YAML (readable configs)
// and MessagePack (compact binary for large generated instances); Load and
// Save pick the codec from the file extension, Decode and Encode take it
// explicitly.
//
// Loading only parses. Validation happens when the caller converts an
// Instance into a solver-ready problem via Instance.Problem, which funnels
// through transport.NewProblem — the single validation gate of the module.
package dataset
