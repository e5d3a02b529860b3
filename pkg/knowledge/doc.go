// Package knowledge composes entity-shaped queries over the atom store.
// Each query assembles one record from several facts and substitutes an
// explicit default for anything missing, so callers never see a lookup
// error. The package also owns the embedded seed fact file that populates
// the store at startup.
package knowledge
