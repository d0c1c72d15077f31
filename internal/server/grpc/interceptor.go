package grpc

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/gophgate/internal/common"
	pb "github.com/dmitrijs2005/gophgate/internal/proto"
	"github.com/dmitrijs2005/gophgate/internal/server/models"
	"github.com/dmitrijs2005/gophgate/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

type ctxKey string

const userKey ctxKey = "user"

// publicMethods need no access token.
var publicMethods = map[string]bool{
	pb.Onboarding_Register_FullMethodName: true,
	pb.Onboarding_Login_FullMethodName:    true,
}

// adminMethods additionally require the ADMIN role.
var adminMethods = map[string]bool{
	pb.Onboarding_ListUsers_FullMethodName: true,
	pb.Onboarding_Approve_FullMethodName:   true,
	pb.Onboarding_Reject_FullMethodName:    true,
	pb.Onboarding_SetActive_FullMethodName: true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if publicMethods[info.FullMethod] || !isOnboardingMethod(info.FullMethod) {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, toStatus(common.ErrUnauthenticated)
	}

	user, err := s.users.Resolve(ctx, accessToken)
	if err != nil {
		return nil, toStatus(err)
	}

	if adminMethods[info.FullMethod] {
		if _, err := services.RequireRole(user, models.RoleAdmin); err != nil {
			return nil, toStatus(err)
		}
	}

	ctx = context.WithValue(ctx, userKey, user)

	return handler(ctx, req)
}

func isOnboardingMethod(fullMethod string) bool {
	return strings.HasPrefix(fullMethod, "/"+ServiceName+"/")
}

// userFromContext returns the user stored by accessTokenInterceptor.
func userFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey).(*models.User)
	return u, ok
}
