// Package librarian reduces documentation and tutorial web pages into flat
// sequences of heading-annotated content sections, and packages those
// sections into search-index records. It understands Sphinx-generated HTML,
// JupyterBook sites, and nbcollection notebook pages.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package librarian
