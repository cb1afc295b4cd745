// Package flowgen turns natural-language workflow descriptions into flow
// graph documents for a visual flow editor.
//
// # Overview
//
// The pipeline has four parts, each usable on its own:
//
//   - Catalog: the indexed knowledge base of component types and starter
//     templates, built from YAML/JSON sources or the builtin set
//   - Resolver: maps a description plus optional component hints to an
//     archetype and an ordered component sequence
//   - Assembler: realizes the sequence as a concrete graph, cloning a
//     starter template when one covers it or chaining components greedily
//   - Validator: checks the structural invariants and reports violations
//     as data
//
// The Generator ties them together behind a single Generate call.
//
// # Usage
//
//	catalog, err := flowgen.BuildCatalog(source.Builtin(), source.BuiltinTemplates())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gen, err := flowgen.New(catalog)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	graph, err := gen.Generate(ctx, "a chatbot that answers questions about my documents", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	data, _ := graph.Export()
//	os.WriteFile("flow.json", data, 0o644)
//
// # Thread safety
//
// A Generator is safe for concurrent use. Catalogs are immutable once
// built; Rebuild publishes a replacement atomically and in-flight
// requests finish against the snapshot they loaded.
//
// # Subpackages
//
//   - source: component and template source documents, decoding, schema
//     checks, and the builtin component set
//   - config: node config maps with deep merge and typed accessors
//   - classify: the external classifier interface for hint selection
//   - store: flow document archives (in-memory and SQLite)
//   - observability: structured logging, OTel metrics, and tracing
package flowgen
