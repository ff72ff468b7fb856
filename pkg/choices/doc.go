// Package choices implements the choice-list engine behind select-type
// questions (checkbox, radiogroup, dropdown, imagepicker, buttongroup). A
// Question owns a ChoiceSet of configured items plus the synthetic "select
// all", "new item", "none" and "other" items, decides which of them are
// visible, splits them into head/body/foot groups, arranges the body into
// columns (row-major or column-major) and keeps the selection in sync with the
// per-item state queries a renderer needs.
//
// Derived views are computed lazily and cached until a configuration, mode,
// context or selection change invalidates them. A Question is not safe for
// concurrent use; the only asynchronous boundary is the choices-by-url fetch,
// which is modelled as a BeginFetch/CompleteFetch pair where only the newest
// request is applied.
package choices
