package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/devarc/pkg/api"
)

// ProjectServiceName is the fully-qualified name of the ProjectService service.
const ProjectServiceName = "devarc.v1.ProjectService"

const (
	ProjectServiceCreateProjectProcedure    = "/devarc.v1.ProjectService/CreateProject"
	ProjectServiceUpdateProjectProcedure    = "/devarc.v1.ProjectService/UpdateProject"
	ProjectServiceDeleteProjectProcedure    = "/devarc.v1.ProjectService/DeleteProject"
	ProjectServiceGetProjectProcedure       = "/devarc.v1.ProjectService/GetProject"
	ProjectServiceListProjectsProcedure     = "/devarc.v1.ProjectService/ListProjects"
	ProjectServiceTransitionStatusProcedure = "/devarc.v1.ProjectService/TransitionStatus"
	ProjectServiceMoveCardProcedure         = "/devarc.v1.ProjectService/MoveCard"
	ProjectServiceGetBoardProcedure         = "/devarc.v1.ProjectService/GetBoard"
	ProjectServiceAddTaskProcedure          = "/devarc.v1.ProjectService/AddTask"
	ProjectServiceToggleTaskProcedure       = "/devarc.v1.ProjectService/ToggleTask"
	ProjectServiceRemoveTaskProcedure       = "/devarc.v1.ProjectService/RemoveTask"
	ProjectServiceAddNoteProcedure          = "/devarc.v1.ProjectService/AddNote"
	ProjectServiceListNotesProcedure        = "/devarc.v1.ProjectService/ListNotes"
)

// ProjectServiceHandler is implemented by the server.
type ProjectServiceHandler interface {
	CreateProject(context.Context, *connect.Request[api.CreateProjectRequest]) (*connect.Response[api.ProjectResponse], error)
	UpdateProject(context.Context, *connect.Request[api.UpdateProjectRequest]) (*connect.Response[api.ProjectResponse], error)
	DeleteProject(context.Context, *connect.Request[api.DeleteProjectRequest]) (*connect.Response[api.DeleteProjectResponse], error)
	GetProject(context.Context, *connect.Request[api.GetProjectRequest]) (*connect.Response[api.ProjectDetail], error)
	ListProjects(context.Context, *connect.Request[api.ListProjectsRequest]) (*connect.Response[api.ListProjectsResponse], error)
	TransitionStatus(context.Context, *connect.Request[api.TransitionStatusRequest]) (*connect.Response[api.StatusResponse], error)
	MoveCard(context.Context, *connect.Request[api.MoveCardRequest]) (*connect.Response[api.StatusResponse], error)
	GetBoard(context.Context, *connect.Request[api.GetBoardRequest]) (*connect.Response[api.GetBoardResponse], error)
	AddTask(context.Context, *connect.Request[api.AddTaskRequest]) (*connect.Response[api.TasksResponse], error)
	ToggleTask(context.Context, *connect.Request[api.TaskRequest]) (*connect.Response[api.TasksResponse], error)
	RemoveTask(context.Context, *connect.Request[api.TaskRequest]) (*connect.Response[api.TasksResponse], error)
	AddNote(context.Context, *connect.Request[api.AddNoteRequest]) (*connect.Response[api.AddNoteResponse], error)
	ListNotes(context.Context, *connect.Request[api.ListNotesRequest]) (*connect.Response[api.ListNotesResponse], error)
}

// NewProjectServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
func NewProjectServiceHandler(svc ProjectServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + ProjectServiceName + "/", routes{
		ProjectServiceCreateProjectProcedure:    connect.NewUnaryHandler(ProjectServiceCreateProjectProcedure, svc.CreateProject, opts...),
		ProjectServiceUpdateProjectProcedure:    connect.NewUnaryHandler(ProjectServiceUpdateProjectProcedure, svc.UpdateProject, opts...),
		ProjectServiceDeleteProjectProcedure:    connect.NewUnaryHandler(ProjectServiceDeleteProjectProcedure, svc.DeleteProject, opts...),
		ProjectServiceGetProjectProcedure:       connect.NewUnaryHandler(ProjectServiceGetProjectProcedure, svc.GetProject, opts...),
		ProjectServiceListProjectsProcedure:     connect.NewUnaryHandler(ProjectServiceListProjectsProcedure, svc.ListProjects, opts...),
		ProjectServiceTransitionStatusProcedure: connect.NewUnaryHandler(ProjectServiceTransitionStatusProcedure, svc.TransitionStatus, opts...),
		ProjectServiceMoveCardProcedure:         connect.NewUnaryHandler(ProjectServiceMoveCardProcedure, svc.MoveCard, opts...),
		ProjectServiceGetBoardProcedure:         connect.NewUnaryHandler(ProjectServiceGetBoardProcedure, svc.GetBoard, opts...),
		ProjectServiceAddTaskProcedure:          connect.NewUnaryHandler(ProjectServiceAddTaskProcedure, svc.AddTask, opts...),
		ProjectServiceToggleTaskProcedure:       connect.NewUnaryHandler(ProjectServiceToggleTaskProcedure, svc.ToggleTask, opts...),
		ProjectServiceRemoveTaskProcedure:       connect.NewUnaryHandler(ProjectServiceRemoveTaskProcedure, svc.RemoveTask, opts...),
		ProjectServiceAddNoteProcedure:          connect.NewUnaryHandler(ProjectServiceAddNoteProcedure, svc.AddNote, opts...),
		ProjectServiceListNotesProcedure:        connect.NewUnaryHandler(ProjectServiceListNotesProcedure, svc.ListNotes, opts...),
	}
}

// ProjectServiceClient is a client for the devarc.v1.ProjectService service.
type ProjectServiceClient interface {
	CreateProject(context.Context, *connect.Request[api.CreateProjectRequest]) (*connect.Response[api.ProjectResponse], error)
	UpdateProject(context.Context, *connect.Request[api.UpdateProjectRequest]) (*connect.Response[api.ProjectResponse], error)
	DeleteProject(context.Context, *connect.Request[api.DeleteProjectRequest]) (*connect.Response[api.DeleteProjectResponse], error)
	GetProject(context.Context, *connect.Request[api.GetProjectRequest]) (*connect.Response[api.ProjectDetail], error)
	ListProjects(context.Context, *connect.Request[api.ListProjectsRequest]) (*connect.Response[api.ListProjectsResponse], error)
	TransitionStatus(context.Context, *connect.Request[api.TransitionStatusRequest]) (*connect.Response[api.StatusResponse], error)
	MoveCard(context.Context, *connect.Request[api.MoveCardRequest]) (*connect.Response[api.StatusResponse], error)
	GetBoard(context.Context, *connect.Request[api.GetBoardRequest]) (*connect.Response[api.GetBoardResponse], error)
	AddTask(context.Context, *connect.Request[api.AddTaskRequest]) (*connect.Response[api.TasksResponse], error)
	ToggleTask(context.Context, *connect.Request[api.TaskRequest]) (*connect.Response[api.TasksResponse], error)
	RemoveTask(context.Context, *connect.Request[api.TaskRequest]) (*connect.Response[api.TasksResponse], error)
	AddNote(context.Context, *connect.Request[api.AddNoteRequest]) (*connect.Response[api.AddNoteResponse], error)
	ListNotes(context.Context, *connect.Request[api.ListNotesRequest]) (*connect.Response[api.ListNotesResponse], error)
}

// NewProjectServiceClient constructs a client for the devarc.v1.ProjectService service.
func NewProjectServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ProjectServiceClient {
	opts = clientOptions(opts)
	return &projectServiceClient{
		createProject:    connect.NewClient[api.CreateProjectRequest, api.ProjectResponse](httpClient, procedureURL(baseURL, ProjectServiceCreateProjectProcedure), opts...),
		updateProject:    connect.NewClient[api.UpdateProjectRequest, api.ProjectResponse](httpClient, procedureURL(baseURL, ProjectServiceUpdateProjectProcedure), opts...),
		deleteProject:    connect.NewClient[api.DeleteProjectRequest, api.DeleteProjectResponse](httpClient, procedureURL(baseURL, ProjectServiceDeleteProjectProcedure), opts...),
		getProject:       connect.NewClient[api.GetProjectRequest, api.ProjectDetail](httpClient, procedureURL(baseURL, ProjectServiceGetProjectProcedure), opts...),
		listProjects:     connect.NewClient[api.ListProjectsRequest, api.ListProjectsResponse](httpClient, procedureURL(baseURL, ProjectServiceListProjectsProcedure), opts...),
		transitionStatus: connect.NewClient[api.TransitionStatusRequest, api.StatusResponse](httpClient, procedureURL(baseURL, ProjectServiceTransitionStatusProcedure), opts...),
		moveCard:         connect.NewClient[api.MoveCardRequest, api.StatusResponse](httpClient, procedureURL(baseURL, ProjectServiceMoveCardProcedure), opts...),
		getBoard:         connect.NewClient[api.GetBoardRequest, api.GetBoardResponse](httpClient, procedureURL(baseURL, ProjectServiceGetBoardProcedure), opts...),
		addTask:          connect.NewClient[api.AddTaskRequest, api.TasksResponse](httpClient, procedureURL(baseURL, ProjectServiceAddTaskProcedure), opts...),
		toggleTask:       connect.NewClient[api.TaskRequest, api.TasksResponse](httpClient, procedureURL(baseURL, ProjectServiceToggleTaskProcedure), opts...),
		removeTask:       connect.NewClient[api.TaskRequest, api.TasksResponse](httpClient, procedureURL(baseURL, ProjectServiceRemoveTaskProcedure), opts...),
		addNote:          connect.NewClient[api.AddNoteRequest, api.AddNoteResponse](httpClient, procedureURL(baseURL, ProjectServiceAddNoteProcedure), opts...),
		listNotes:        connect.NewClient[api.ListNotesRequest, api.ListNotesResponse](httpClient, procedureURL(baseURL, ProjectServiceListNotesProcedure), opts...),
	}
}

type projectServiceClient struct {
	createProject    *connect.Client[api.CreateProjectRequest, api.ProjectResponse]
	updateProject    *connect.Client[api.UpdateProjectRequest, api.ProjectResponse]
	deleteProject    *connect.Client[api.DeleteProjectRequest, api.DeleteProjectResponse]
	getProject       *connect.Client[api.GetProjectRequest, api.ProjectDetail]
	listProjects     *connect.Client[api.ListProjectsRequest, api.ListProjectsResponse]
	transitionStatus *connect.Client[api.TransitionStatusRequest, api.StatusResponse]
	moveCard         *connect.Client[api.MoveCardRequest, api.StatusResponse]
	getBoard         *connect.Client[api.GetBoardRequest, api.GetBoardResponse]
	addTask          *connect.Client[api.AddTaskRequest, api.TasksResponse]
	toggleTask       *connect.Client[api.TaskRequest, api.TasksResponse]
	removeTask       *connect.Client[api.TaskRequest, api.TasksResponse]
	addNote          *connect.Client[api.AddNoteRequest, api.AddNoteResponse]
	listNotes        *connect.Client[api.ListNotesRequest, api.ListNotesResponse]
}

func (c *projectServiceClient) CreateProject(ctx context.Context, req *connect.Request[api.CreateProjectRequest]) (*connect.Response[api.ProjectResponse], error) {
	return c.createProject.CallUnary(ctx, req)
}

func (c *projectServiceClient) UpdateProject(ctx context.Context, req *connect.Request[api.UpdateProjectRequest]) (*connect.Response[api.ProjectResponse], error) {
	return c.updateProject.CallUnary(ctx, req)
}

func (c *projectServiceClient) DeleteProject(ctx context.Context, req *connect.Request[api.DeleteProjectRequest]) (*connect.Response[api.DeleteProjectResponse], error) {
	return c.deleteProject.CallUnary(ctx, req)
}

func (c *projectServiceClient) GetProject(ctx context.Context, req *connect.Request[api.GetProjectRequest]) (*connect.Response[api.ProjectDetail], error) {
	return c.getProject.CallUnary(ctx, req)
}

func (c *projectServiceClient) ListProjects(ctx context.Context, req *connect.Request[api.ListProjectsRequest]) (*connect.Response[api.ListProjectsResponse], error) {
	return c.listProjects.CallUnary(ctx, req)
}

func (c *projectServiceClient) TransitionStatus(ctx context.Context, req *connect.Request[api.TransitionStatusRequest]) (*connect.Response[api.StatusResponse], error) {
	return c.transitionStatus.CallUnary(ctx, req)
}

func (c *projectServiceClient) MoveCard(ctx context.Context, req *connect.Request[api.MoveCardRequest]) (*connect.Response[api.StatusResponse], error) {
	return c.moveCard.CallUnary(ctx, req)
}

func (c *projectServiceClient) GetBoard(ctx context.Context, req *connect.Request[api.GetBoardRequest]) (*connect.Response[api.GetBoardResponse], error) {
	return c.getBoard.CallUnary(ctx, req)
}

func (c *projectServiceClient) AddTask(ctx context.Context, req *connect.Request[api.AddTaskRequest]) (*connect.Response[api.TasksResponse], error) {
	return c.addTask.CallUnary(ctx, req)
}

func (c *projectServiceClient) ToggleTask(ctx context.Context, req *connect.Request[api.TaskRequest]) (*connect.Response[api.TasksResponse], error) {
	return c.toggleTask.CallUnary(ctx, req)
}

func (c *projectServiceClient) RemoveTask(ctx context.Context, req *connect.Request[api.TaskRequest]) (*connect.Response[api.TasksResponse], error) {
	return c.removeTask.CallUnary(ctx, req)
}

func (c *projectServiceClient) AddNote(ctx context.Context, req *connect.Request[api.AddNoteRequest]) (*connect.Response[api.AddNoteResponse], error) {
	return c.addNote.CallUnary(ctx, req)
}

func (c *projectServiceClient) ListNotes(ctx context.Context, req *connect.Request[api.ListNotesRequest]) (*connect.Response[api.ListNotesResponse], error) {
	return c.listNotes.CallUnary(ctx, req)
}
