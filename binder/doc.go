// Package binder turns an *http.Request into a validator.Input.
//
// A Binder copies one part of the request into the input map. Request
// runs a list of binders in order, so later sources override earlier
// ones for the same key:
//
//	r := chi.NewRouter()
//	r.Post("/teams/{team}/members", func(w http.ResponseWriter, r *http.Request) {
//	    in, err := binder.Request(r) // query, body, then chi URL params
//	    if err != nil {
//	        http.Error(w, err.Error(), http.StatusBadRequest)
//	        return
//	    }
//	    email, err := v.Email("email").Require(in)
//	    ...
//	})
//
// Repeated keys and keys ending in "[]" ("tags[]=a&tags[]=b") become
// []any lists under the name without brackets, which is the shape List
// and Map rules expect. Multipart files become validator.Upload values,
// or []validator.Upload for multiple files under one name.
package binder
