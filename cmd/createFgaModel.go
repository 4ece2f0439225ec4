// Copyright 2025 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/openfga/go-sdk/client"
	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/nexusdev/nexus-service/internal/authorization"
	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/openfga"
	"github.com/nexusdev/nexus-service/internal/tracing"
)

const StoreName = "nexus-service"

var createFgaModelCmd = &cobra.Command{
	Use:   "create-fga-model",
	Short: "Creates an openfga model",
	Long:  `Creates the openfga authorization model, and the store when no store id is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiURL, _ := cmd.Flags().GetString("fga-api-url")
		apiToken, _ := cmd.Flags().GetString("fga-api-token")
		storeID, _ := cmd.Flags().GetString("fga-store-id")
		format, _ := cmd.Flags().GetString("format")
		verbose, _ := cmd.Flags().GetBool("verbose")
		configMapResource, _ := cmd.Flags().GetString("store-k8s-configmap-resource")
		kubeconfigPath, _ := cmd.Flags().GetString("kubeconfig")

		createdStore := storeID == ""

		modelID, storeID, err := writeAuthModel(cmd.Context(), apiURL, apiToken, storeID, verbose)
		if err != nil {
			return err
		}

		if configMapResource != "" {
			if err := updateModelConfigMap(cmd.Context(), kubeconfigPath, configMapResource, storeID, modelID); err != nil {
				return fmt.Errorf("failed to update configmap: %w", err)
			}
			cmd.Printf("ConfigMap %s updated successfully\n", configMapResource)
		}

		if format == "json" {
			output := struct {
				StoreID string `json:"store_id"`
				ModelID string `json:"model_id"`
			}{
				StoreID: storeID,
				ModelID: modelID,
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(output)
		}

		cmd.Printf("Created model: %s\n", modelID)
		if createdStore {
			cmd.Printf("Created store: %s\n", storeID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createFgaModelCmd)

	createFgaModelCmd.Flags().String("fga-api-url", "", "The openfga API URL")
	createFgaModelCmd.Flags().String("fga-api-token", "", "The openfga API token")
	createFgaModelCmd.Flags().String("fga-store-id", "", "The openfga store to create the model in, if empty one will be created")
	createFgaModelCmd.Flags().String("format", "text", "Output format (text or json)")
	createFgaModelCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	createFgaModelCmd.Flags().String("store-k8s-configmap-resource", "", "The configmap resource to store the FGA Store ID and Model ID, format: namespace/name")
	createFgaModelCmd.Flags().String("kubeconfig", "", "Path to the kubeconfig file (optional, defaults to in-cluster config)")
	_ = createFgaModelCmd.MarkFlagRequired("fga-api-url")
	_ = createFgaModelCmd.MarkFlagRequired("fga-api-token")
}

func writeAuthModel(ctx context.Context, apiURL, apiToken, storeID string, verbose bool) (string, string, error) {
	u, err := url.Parse(apiURL)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse url: %w", err)
	}

	logger := logging.NewNoopLogger()

	cfg := openfga.Config{
		ApiScheme:   u.Scheme,
		ApiHost:     u.Host,
		StoreID:     storeID,
		ApiToken:    apiToken,
		AuthModelID: "",
		Debug:       verbose,
		Tracer:      tracing.NewNoopTracer(),
		Monitor:     monitoring.NewNoopMonitor("", logger),
		Logger:      logger,
	}

	fgaClient := openfga.NewClient(&cfg)

	if storeID == "" {
		storeID, err = fgaClient.CreateStore(ctx, StoreName)
		if err != nil {
			return "", "", fmt.Errorf("failed to create store: %w", err)
		}

		fgaClient.SetStoreID(ctx, storeID)
	}

	authzModel := authorization.NewAuthorizationModelProvider("v0").GetModel()

	modelID, err := fgaClient.WriteModel(
		ctx,
		&client.ClientWriteAuthorizationModelRequest{
			TypeDefinitions: authzModel.TypeDefinitions,
			SchemaVersion:   authzModel.SchemaVersion,
			Conditions:      authzModel.Conditions,
		},
	)
	if err != nil {
		return "", "", fmt.Errorf("failed to write model: %w", err)
	}

	return modelID, storeID, nil
}

// updateModelConfigMap records the store and model ids where the serve
// deployment reads them from.
func updateModelConfigMap(ctx context.Context, kubeconfigPath, configMapResource, storeID, modelID string) error {
	namespace, name, ok := strings.Cut(configMapResource, "/")
	if !ok || namespace == "" || name == "" {
		return fmt.Errorf("invalid configmap resource format: %s, expected namespace/name", configMapResource)
	}

	var config *rest.Config
	var err error

	if kubeconfigPath != "" {
		config, err = clientcmd.BuildConfigFromFlags("", kubeconfigPath)
	} else {
		config, err = rest.InClusterConfig()
	}
	if err != nil {
		return fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	cm, err := clientset.CoreV1().ConfigMaps(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if !k8serrors.IsNotFound(err) {
			return fmt.Errorf("failed to get configmap %s: %w", configMapResource, err)
		}

		cm = &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{
				Name:      name,
				Namespace: namespace,
			},
			Data: map[string]string{
				"OPENFGA_STORE_ID":               storeID,
				"OPENFGA_AUTHORIZATION_MODEL_ID": modelID,
			},
		}
		if _, err := clientset.CoreV1().ConfigMaps(namespace).Create(ctx, cm, metav1.CreateOptions{}); err != nil {
			return fmt.Errorf("failed to create configmap %s: %w", configMapResource, err)
		}
		return nil
	}

	if cm.Data == nil {
		cm.Data = make(map[string]string)
	}

	cm.Data["OPENFGA_STORE_ID"] = storeID
	cm.Data["OPENFGA_AUTHORIZATION_MODEL_ID"] = modelID

	if _, err := clientset.CoreV1().ConfigMaps(namespace).Update(ctx, cm, metav1.UpdateOptions{}); err != nil {
		return fmt.Errorf("failed to update configmap %s: %w", configMapResource, err)
	}

	return nil
}
