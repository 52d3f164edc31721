// Package postcode normalizes and validates United Kingdom postcodes.
//
// Validation runs in two stages. The structural stage matches the
// normalized string against the general postcode grammar. The district
// stage applies table-driven administrative rules the grammar cannot
// express: zero districts, Central London subdivisions, non-geographic
// districts and single/double digit areas.
//
// Everything in this package is a pure function of its input. The
// reference tables are built once and never written afterwards, so every
// exported function is safe for concurrent use.
package postcode
