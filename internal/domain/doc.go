// Package domain models ARPANSA ultraviolet (UV) index observations.
//
// # Data Source
//
// UV index values come from the Australian Radiation Protection and Nuclear
// Safety Agency (ARPANSA) real-time monitoring network, published as an XML
// document at https://uvdata.arpansa.gov.au/xml/uvvalues.xml. The document
// lists one <location> element per monitoring station, keyed by an "id"
// attribute (e.g. "Canberra"), each carrying the current index in an
// <index> child element.
//
// # Index Semantics
//
// The UV index is an open-ended linear scale; Australian stations commonly
// report 0–16. The feed encodes it as decimal text ("0.0", "7", "11.5").
// Values are parsed to float64 before any threshold comparison — the
// comparison is always numeric, never lexical.
//
// # Advisory Tiers
//
// Observations are classified into a three-level advisory scale:
//
//	index < 3          low       "Get some sun."
//	3 ≤ index ≤ 5      moderate  "Hat, sunscreen, long sleeves."
//	index > 5          high      "Stay inside."
//
// Both boundaries (3 and 5) belong to the moderate tier. The advisory
// strings are the exact user-facing messages rendered on the page.
//
// # Failure Taxonomy
//
// Fetch failures are categorized as [FailureNetwork] (request rejected, or
// HTTP status outside 200–299) or [FailureData] (response is not well-formed
// XML, the target location is absent, or its index is not numeric). Both are
// carried as a [*FetchError] so callers can label logs and metrics by kind.
//
// # ID Generation
//
// Observation IDs are deterministic SHA-256 hashes of location|raw|time.
// Re-publishing the same observation produces the same ID, so downstream
// consumers can deduplicate replays without coordination. See [generateID].
package domain
