// Package intelligence turns a chat message plus the current plan into a
// candidate update batch from an LLM. It never applies or filters updates;
// callers reconcile the returned proposal against the user's scope.
package intelligence
