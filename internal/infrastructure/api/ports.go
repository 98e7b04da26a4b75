package api

import "github.com/abelxmendoza/Lore-Book-sub011/internal/domain/ports"

// Compile-time checks that Client satisfies every backend port.
var (
	_ ports.MemoryAPI     = (*Client)(nil)
	_ ports.LocationAPI   = (*Client)(nil)
	_ ports.ProposalAPI   = (*Client)(nil)
	_ ports.ResolutionAPI = (*Client)(nil)
	_ ports.SkillAPI      = (*Client)(nil)
	_ ports.DevAPI        = (*Client)(nil)
)
