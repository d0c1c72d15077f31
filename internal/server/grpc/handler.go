package grpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophgate/internal/common"
	pb "github.com/dmitrijs2005/gophgate/internal/proto"
	"github.com/dmitrijs2005/gophgate/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type codeMapping struct {
	err  error
	code codes.Code
	msg  string
}

var codeMappings = []codeMapping{
	{common.ErrInvalidCredentials, codes.Unauthenticated, "Invalid email or password"},
	{common.ErrUnauthenticated, codes.Unauthenticated, "Could not validate credentials"},
	{common.ErrForbidden, codes.PermissionDenied, "Admin privileges required"},
	{common.ErrInactiveAccount, codes.PermissionDenied, "Inactive user"},
	{common.ErrEmailTaken, codes.AlreadyExists, "Email already registered"},
	{common.ErrWeakPassword, codes.InvalidArgument, "Password must be at least 8 characters"},
	{common.ErrInvalidStatus, codes.InvalidArgument, "Invalid status for rejection"},
	{common.ErrInvalidState, codes.FailedPrecondition, "User status is not PENDING"},
	{common.ErrNotFound, codes.NotFound, "User not found"},
}

// toStatus converts a service error into a gRPC status. Internal causes
// are never sent to the client.
func toStatus(err error) error {
	for _, m := range codeMappings {
		if errors.Is(err, m.err) {
			return status.Error(m.code, m.msg)
		}
	}
	if errors.Is(err, common.ErrInvalidInput) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, common.ErrInternal.Error())
}

func toUser(u *models.User) *pb.User {
	return &pb.User{
		Id:              u.ID,
		Email:           u.Email,
		FullName:        u.FullName,
		Role:            string(u.Role),
		Status:          string(u.Status),
		RejectionReason: u.RejectionReason,
		IsActive:        u.IsActive,
		CreatedAt:       u.CreatedAt.Unix(),
		UpdatedAt:       u.UpdatedAt.Unix(),
	}
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.User, error) {

	s.logger.Info(ctx, "Registration request")

	user, err := s.users.Register(ctx, req.GetEmail(), req.GetPassword(), req.FullName)
	if err != nil {
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	return toUser(user), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	tok, err := s.users.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.LoginResponse{
		AccessToken: tok.Token,
		TokenType:   tok.TokenType,
		ExpiresIn:   int64(tok.ExpiresIn.Seconds()),
	}, nil
}

func (s *GRPCServer) Me(ctx context.Context, _ *pb.MeRequest) (*pb.User, error) {
	user, ok := userFromContext(ctx)
	if !ok {
		return nil, toStatus(common.ErrUnauthenticated)
	}
	return toUser(user), nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, req *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {

	page, err := s.users.ListUsers(ctx, req.GetStatus(), int(req.GetPage()), int(req.GetPageSize()))
	if err != nil {
		return nil, toStatus(err)
	}

	items := make([]*pb.User, 0, len(page.Users))
	for _, u := range page.Users {
		items = append(items, toUser(u))
	}
	return &pb.ListUsersResponse{
		Items:    items,
		Total:    int64(page.Total),
		Page:     int32(page.Page),
		PageSize: int32(page.PageSize),
	}, nil
}

func (s *GRPCServer) Approve(ctx context.Context, req *pb.ApproveRequest) (*pb.User, error) {

	user, err := s.users.Approve(ctx, req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "user approved", "user_id", user.ID)
	return toUser(user), nil
}

func (s *GRPCServer) Reject(ctx context.Context, req *pb.RejectRequest) (*pb.User, error) {

	user, err := s.users.Reject(ctx, req.GetId(), models.Status(req.GetStatus()), req.RejectionReason)
	if err != nil {
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "user rejected", "user_id", user.ID)
	return toUser(user), nil
}

func (s *GRPCServer) SetActive(ctx context.Context, req *pb.SetActiveRequest) (*pb.User, error) {

	if req.Active == nil {
		return nil, toStatus(fmt.Errorf("%w: active must be set", common.ErrInvalidInput))
	}

	user, err := s.users.SetActive(ctx, req.GetId(), req.GetActive())
	if err != nil {
		return nil, toStatus(err)
	}
	return toUser(user), nil
}
