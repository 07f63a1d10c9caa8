package vocabulary

// Standard Vocabulary IRIs
//
// Commonly used W3C and semantic web standard IRIs. These back the built-in
// property overrides and the default prefix table in configuration.
//
// References:
// - RDF: https://www.w3.org/TR/rdf11-concepts/
// - RDFS: https://www.w3.org/TR/rdf-schema/
// - OWL: https://www.w3.org/TR/owl2-overview/
// - Schema.org: https://schema.org/

// RDF and RDF Schema IRIs
const (
	// RdfType relates a resource to its class.
	RdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

	// RdfsLabel provides a human-readable name for a resource.
	// Used for: the canonical-name built-in override
	RdfsLabel = "http://www.w3.org/2000/01/rdf-schema#label"

	// RdfsClass is the class of classes.
	RdfsClass = "http://www.w3.org/2000/01/rdf-schema#Class"

	// RdfsSubClassOf relates a class to one of its superclasses.
	RdfsSubClassOf = "http://www.w3.org/2000/01/rdf-schema#subClassOf"
)

// OWL (Web Ontology Language) IRIs
const (
	// OwlSameAs indicates that two URI references refer to the same entity.
	// Used for: the alias built-in override
	OwlSameAs = "http://www.w3.org/2002/07/owl#sameAs"

	// OwlEquivalentProperty indicates equivalent properties
	OwlEquivalentProperty = "http://www.w3.org/2002/07/owl#equivalentProperty"
)

// Namespace IRIs for the default prefix table
const (
	RdfNamespace    = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RdfsNamespace   = "http://www.w3.org/2000/01/rdf-schema#"
	OwlNamespace    = "http://www.w3.org/2002/07/owl#"
	SchemaNamespace = "https://schema.org/"
)
