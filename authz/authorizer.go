package authz

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/fatih/structs"
	"github.com/open-policy-agent/opa/ast"
	"github.com/open-policy-agent/opa/rego"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	errs "github.com/mindwell-care/patients/errors"
)

var (
	//go:embed policy.rego
	ownershipPolicy string

	ErrMalformedId = errs.New(errs.BadRequest, "Specified id is not valid")
	ErrNotFound    = errs.New(errs.NotFound, "Specified id does not reference an existing record")
	ErrNotOwner    = errs.New(errs.Forbidden, "record belongs to another therapist")
)

// Resource is the ownership view of a stored record, the only attributes the
// policy needs to reach a decision.
type Resource struct {
	Id    string `structs:"id"`
	Owner string `structs:"owner"`
}

// ResourceFetcher reads the current ownership state of a record. The fetch
// must hit storage on every call; decisions are never cached across requests.
type ResourceFetcher interface {
	GetResource(ctx context.Context, id primitive.ObjectID) (*Resource, error)
}

// Decision is the outcome of an authorization check. A denied decision
// carries the reason to surface to the caller.
type Decision struct {
	allowed bool
	reason  error
}

func Allow() Decision {
	return Decision{allowed: true}
}

func Deny(reason error) Decision {
	return Decision{reason: reason}
}

func (d Decision) Allowed() bool {
	return d.allowed
}

func (d Decision) Reason() error {
	return d.reason
}

//go:generate mockgen --build_flags=--mod=mod -source=./authorizer.go -destination=./test/mock_authorizer.go -package test MockOwnershipAuthorizer

type OwnershipAuthorizer interface {
	Authorize(ctx context.Context, subjectId string, resourceId string) (Decision, error)
	EvaluatePolicy(ctx context.Context, input map[string]interface{}) (bool, error)
}

func NewOwnershipAuthorizer(resources ResourceFetcher, logger *zap.SugaredLogger) (OwnershipAuthorizer, error) {
	compiler, err := ast.CompileModules(map[string]string{
		"policy.rego": ownershipPolicy,
	})
	if err != nil {
		return nil, err
	}

	return &embeddedOpaAuthorizer{
		resources: resources,
		logger:    logger,
		policy:    compiler,
	}, nil
}

type embeddedOpaAuthorizer struct {
	resources ResourceFetcher
	logger    *zap.SugaredLogger
	policy    *ast.Compiler
}

// Authorize decides whether subjectId may act on the record referenced by
// resourceId. Malformed ids are rejected before storage is touched.
func (e *embeddedOpaAuthorizer) Authorize(ctx context.Context, subjectId string, resourceId string) (Decision, error) {
	id, err := primitive.ObjectIDFromHex(resourceId)
	if err != nil {
		return Deny(ErrMalformedId), nil
	}

	resource, err := e.resources.GetResource(ctx, id)
	if err != nil {
		return Decision{}, fmt.Errorf("unable to fetch resource for authorization: %w", err)
	}
	if resource == nil {
		return Deny(ErrNotFound), nil
	}

	resourceStruct := structs.New(*resource)
	resourceStruct.TagName = "structs"
	in := map[string]interface{}{
		"subject":  subjectId,
		"resource": resourceStruct.Map(),
	}

	allowed, err := e.EvaluatePolicy(ctx, in)
	if err != nil {
		return Decision{}, err
	}
	if !allowed {
		return Deny(ErrNotOwner), nil
	}

	return Allow(), nil
}

func (e *embeddedOpaAuthorizer) EvaluatePolicy(ctx context.Context, input map[string]interface{}) (bool, error) {
	r := rego.New(
		rego.Package("authz.patients"),
		rego.Query("allow"),
		rego.Compiler(e.policy),
		rego.Input(input),
	)

	results, err := r.Eval(ctx)
	if err != nil {
		return false, fmt.Errorf("unable to evaluate authorization policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return false, fmt.Errorf("evaluating authorization policy returned no results")
	}

	val, ok := results[0].Expressions[0].Value.(bool)
	if !ok {
		return false, fmt.Errorf("unexpected authorization result: %v", results[0].Expressions[0].Value)
	}

	e.logger.Debugw("ownership policy eval", zap.Any("input", input), zap.Bool("allow", val))

	return val, nil
}
