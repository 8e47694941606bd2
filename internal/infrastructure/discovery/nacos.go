package discovery

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nacos-group/nacos-sdk-go/v2/clients"
	"github.com/nacos-group/nacos-sdk-go/v2/common/constant"
	"github.com/nacos-group/nacos-sdk-go/v2/model"
	"github.com/nacos-group/nacos-sdk-go/v2/vo"
	"go.uber.org/zap"
)

// instanceSelector is the part of naming_client.INamingClient used here.
type instanceSelector interface {
	SelectOneHealthyInstance(param vo.SelectOneHealthInstanceParam) (*model.Instance, error)
}

// NacosConfig addresses a Nacos cluster. Addrs is "ip1:port1,ip2:port2".
type NacosConfig struct {
	Addrs       string
	NamespaceID string
	Group       string
	Scheme      string
}

// NacosResolver picks one healthy instance per call using the Nacos client's
// built-in weighting.
type NacosResolver struct {
	selector instanceSelector
	group    string
	scheme   string
}

func NewNacosResolver(cfg NacosConfig, log *zap.Logger) (*NacosResolver, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.NamespaceID == "" {
		log.Warn("[discovery][nacos] namespace not set; using the public namespace")
	}

	var serverConfigs []constant.ServerConfig
	for _, addr := range strings.Split(cfg.Addrs, ",") {
		host, portStr, ok := strings.Cut(strings.TrimSpace(addr), ":")
		if !ok {
			return nil, fmt.Errorf("invalid nacos address format: %s", addr)
		}
		port, err := strconv.ParseUint(portStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid port in nacos address: %s", portStr)
		}
		serverConfigs = append(serverConfigs, *constant.NewServerConfig(host, port))
	}

	clientConfig := *constant.NewClientConfig(
		constant.WithNotLoadCacheAtStart(true),
		constant.WithLogDir("/tmp/nacos/log"),
		constant.WithCacheDir("/tmp/nacos/cache"),
		constant.WithLogLevel("warn"),
		constant.WithNamespaceId(cfg.NamespaceID),
	)

	namingClient, err := clients.NewNamingClient(vo.NacosClientParam{
		ClientConfig:  &clientConfig,
		ServerConfigs: serverConfigs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create nacos naming client: %w", err)
	}

	log.Info("[discovery][nacos] naming client ready", zap.String("addrs", cfg.Addrs))
	return newNacosResolver(namingClient, cfg.Group, cfg.Scheme), nil
}

func newNacosResolver(selector instanceSelector, group, scheme string) *NacosResolver {
	if group == "" {
		group = "DEFAULT_GROUP"
	}
	if scheme == "" {
		scheme = "http"
	}
	return &NacosResolver{selector: selector, group: group, scheme: scheme}
}

func (r *NacosResolver) Resolve(_ context.Context, service string) (string, error) {
	instance, err := r.selector.SelectOneHealthyInstance(vo.SelectOneHealthInstanceParam{
		ServiceName: service,
		GroupName:   r.group,
	})
	if err != nil {
		return "", fmt.Errorf("failed to discover healthy instance for service '%s': %w", service, err)
	}
	if instance == nil {
		return "", fmt.Errorf("%w: no healthy instance for %s", ErrUnknownService, service)
	}
	return fmt.Sprintf("%s://%s:%d", r.scheme, instance.Ip, instance.Port), nil
}
