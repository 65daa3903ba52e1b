// common.go
//
// A scalable, high performance drop-in replacement for the trello-board koa data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of boardsdb.
// boardsdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// boardsdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with boardsdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/boardsdb/internal/middleware"
	"github.com/localnerve/boardsdb/internal/types"
)

// requireIdentity extracts the caller identity resolved by the middleware.
// Reaching a handler without one means the gate was bypassed; treat it the
// same as an unauthenticated request.
func requireIdentity(c *fiber.Ctx) (types.Identity, error) {
	identity, ok := middleware.Identity(c)
	if !ok {
		return types.Identity{}, types.Unauthenticated("Authentication required", "auth.required")
	}
	return identity, nil
}

// paramID parses the :id path parameter.
func paramID(c *fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, types.BadInput("id must be a positive number", nil)
	}
	return id, nil
}

// queryID parses a required id query parameter.
func queryID(c *fiber.Ctx, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil || id == 0 {
		return 0, types.BadInput(fmt.Sprintf("%s must be a positive number", name), nil)
	}
	return id, nil
}
