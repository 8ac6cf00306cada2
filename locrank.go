// Package locrank generates ranked element locators for test automation.
// It fetches a web page, finds its interactive elements (inputs, selects,
// anchors, buttons), and for each one derives candidate CSS and XPath
// selectors ordered from most to least robust.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package locrank
