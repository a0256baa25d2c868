package location

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/urlargs/internal/nav"
	"github.com/GriffinCanCode/urlargs/internal/params"
	"github.com/GriffinCanCode/urlargs/internal/shared/types"
)

// Create opens a new session
func (p *Provider) Create(ctx context.Context, args map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	rawURL, err := getString(args, "url", false)
	if err != nil {
		return failure(err.Error())
	}

	s, err := p.sessions.Create(rawURL)
	if err != nil {
		return failure(err.Error())
	}
	p.recorder.SetActiveSessions(p.sessions.Count())
	p.logger.Debug("Session created", zap.String("session_id", s.ID.String()), zap.String("url", s.Host.Path(true)))

	return success(snapshot(s))
}

// Close discards a session
func (p *Provider) Close(ctx context.Context, args map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	sid, err := sessionID(args, appCtx)
	if err != nil {
		return failure(err.Error())
	}
	if err := p.sessions.Close(sid); err != nil {
		return failure(err.Error())
	}
	p.recorder.SetActiveSessions(p.sessions.Count())
	p.logger.Debug("Session closed", zap.String("session_id", sid))

	return success(map[string]interface{}{"session_id": sid, "closed": true})
}

// Params lists the session's argument tokens. With a name it also reports
// the last matching parameter.
func (p *Provider) Params(ctx context.Context, args map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	name, err := getString(args, "name", false)
	if err != nil {
		return failure(err.Error())
	}
	s, res := p.session(args, appCtx)
	if s == nil {
		return res, nil
	}

	data := tokenData(s)
	if _, ok := args["name"]; ok {
		match, found := params.FromTokens(data["params"].([]string)).Lookup(name)
		data["found"] = found
		if found {
			data["match"] = match
		}
	}
	return success(data)
}

// Parse classifies a single token. It needs no session.
func (p *Provider) Parse(ctx context.Context, args map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	token, err := getString(args, "token", true)
	if err != nil {
		return failure(err.Error())
	}

	parsed, ok := params.Parse(token)
	if !ok {
		return &types.Result{
			Success: false,
			Data:    map[string]interface{}{"token": token, "is_parameter": false},
			Error:   stringPtr(params.ErrNotAParameter.Error()),
		}, nil
	}

	return success(map[string]interface{}{
		"token":        token,
		"is_parameter": true,
		"name":         parsed.Name,
		"value":        parsed.Value,
		"has_value":    parsed.HasValue,
	})
}

// Set creates or overwrites a query parameter
func (p *Provider) Set(ctx context.Context, args map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	s, res := p.session(args, appCtx)
	if s == nil {
		return res, nil
	}
	key, err := getString(args, "key", true)
	if err != nil {
		return failure(err.Error())
	}
	value, err := getString(args, "value", false)
	if err != nil {
		return failure(err.Error())
	}

	s.Translator.Set(key, value)
	return success(tokenData(s))
}

// Delete removes every occurrence of a query parameter
func (p *Provider) Delete(ctx context.Context, args map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	s, res := p.session(args, appCtx)
	if s == nil {
		return res, nil
	}
	key, err := getString(args, "key", true)
	if err != nil {
		return failure(err.Error())
	}

	s.Translator.Delete(key)
	return success(tokenData(s))
}

// Path returns the session's location
func (p *Provider) Path(ctx context.Context, args map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	s, res := p.session(args, appCtx)
	if s == nil {
		return res, nil
	}
	full := getBool(args, "full", false)

	return success(map[string]interface{}{
		"session_id": s.ID.String(),
		"path":       s.Navigator.Path(full),
		"full":       full,
	})
}

// Hash returns the session's fragment
func (p *Provider) Hash(ctx context.Context, args map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	s, res := p.session(args, appCtx)
	if s == nil {
		return res, nil
	}
	return success(map[string]interface{}{
		"session_id": s.ID.String(),
		"hash":       s.Navigator.Hash(),
	})
}

// SetHash replaces the session's fragment
func (p *Provider) SetHash(ctx context.Context, args map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	s, res := p.session(args, appCtx)
	if s == nil {
		return res, nil
	}
	hash, err := getString(args, "hash", true)
	if err != nil {
		return failure(err.Error())
	}

	s.Navigator.SetHash(hash)
	return success(map[string]interface{}{
		"session_id": s.ID.String(),
		"hash":       s.Navigator.Hash(),
		"full_path":  s.Navigator.Path(true),
	})
}

// Open follows a link from the session's location
func (p *Provider) Open(ctx context.Context, args map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	s, res := p.session(args, appCtx)
	if s == nil {
		return res, nil
	}
	target, err := getString(args, "url", true)
	if err != nil {
		return failure(err.Error())
	}
	newTab := getBool(args, "new_tab", false)

	if err := s.Navigator.OpenLink(target, newTab); err != nil {
		var linkErr *nav.LinkOpenError
		if errors.As(err, &linkErr) {
			return failure(linkErr.Error())
		}
		return failure(err.Error())
	}

	data := snapshot(s)
	data["opened"] = s.Host.Opened()
	data["history"] = s.Host.History()
	return success(data)
}

func (p *Provider) session(args map[string]interface{}, appCtx *types.Context) (*Session, *types.Result) {
	sid, err := sessionID(args, appCtx)
	if err != nil {
		return nil, types.Failure(err.Error())
	}
	s, err := p.sessions.Get(sid)
	if err != nil {
		return nil, types.Failure(err.Error())
	}
	return s, nil
}

func tokenData(s *Session) map[string]interface{} {
	tokens := s.Translator.List()
	return map[string]interface{}{
		"session_id": s.ID.String(),
		"params":     tokens,
		"flags":      params.FromTokens(tokens).Flags(),
	}
}

func snapshot(s *Session) map[string]interface{} {
	data := tokenData(s)
	data["path"] = s.Navigator.Path(false)
	data["full_path"] = s.Navigator.Path(true)
	data["hash"] = s.Navigator.Hash()
	data["created_at"] = s.CreatedAt.UTC().Format(time.RFC3339Nano)
	return data
}

func stringPtr(s string) *string {
	return &s
}
