// Package gen holds the language-agnostic codegen scaffolding shared by
// every target-language backend under gen/python, gen/typescript, and
// gen/r: a symbol-scope allocator, a line-buffer text model, and generic
// function/argument/module shapes that each backend's templates fill in
// with target syntax. Grounded on
// _examples/original_source's backend/generic/scope.py,
// backend/generic/linebuffer.py, and backend/generic/model.py.
package gen
