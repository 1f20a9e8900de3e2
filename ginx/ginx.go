// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package ginx plugs a translator into a Gin engine.
//
// Handlers report failures with c.Error; the middleware translates the last
// recorded error once the chain returns, unless a response was already
// written:
//
//	r := gin.New()
//	r.Use(ginx.Middleware(t))
//	r.GET("/users/:id", func(c *gin.Context) {
//		_ = c.Error(errors.New("user not found"))
//	})
package ginx

import (
	"github.com/gin-gonic/gin"

	"github.com/stacklok/toolhive-errtranslate/translator"
)

// Middleware returns a gin.HandlerFunc that translates errors recorded by
// later handlers with t.
func Middleware(t *translator.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		t.Handle(c.Errors.Last().Err, c.Writer, c.Request, nil)
		c.Abort()
	}
}

// BindJSON decodes the request body into v with translator.DecodeJSON and
// records any failure on c, so malformed bodies become 400 responses.
func BindJSON(c *gin.Context, v any) bool {
	if err := translator.DecodeJSON(c.Request, v); err != nil {
		_ = c.Error(err)
		return false
	}
	return true
}
