// Package tui implements the interactive customer browser. The Bubble
// Tea model owns all screen state: the paginated, search-filtered
// customer list, the detail panel, the add/edit form, and the pending
// confirmation prompt. Network calls run as tea.Cmd closures and report
// back through typed messages; the event loop itself never blocks.
package tui
